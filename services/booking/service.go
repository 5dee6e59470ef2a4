package booking

import (
	bookingRepo "hotelify/database/repository/booking"
	roomRepo "hotelify/database/repository/room"
	"hotelify/services/payment"

	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Rooms    roomRepo.RoomRepository
	Bookings bookingRepo.BookingRepository
	Gateway  payment.Gateway
	// GatewaySecret keys the HMAC signature check on payment verification.
	GatewaySecret string
	// Currency used when opening gateway orders.
	Currency string
	Logger   *zap.Logger
}

// NewBookingService wires a DefaultBookingService.
func NewBookingService(rooms roomRepo.RoomRepository, bookings bookingRepo.BookingRepository, gateway payment.Gateway, gatewaySecret, currency string, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Rooms:         rooms,
		Bookings:      bookings,
		Gateway:       gateway,
		GatewaySecret: gatewaySecret,
		Currency:      currency,
		Logger:        logger,
	}
}
