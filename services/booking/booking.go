package booking

import (
	"fmt"
	"time"

	"hotelify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateCashBooking records a pay-at-desk booking. The room is claimed with
// a conditional update before the ledger write, so a second concurrent
// booking on the same room fails with roomUnavailableError instead of
// double-holding it.
func (s *DefaultBookingService) CreateCashBooking(requester models.Requester, intent models.BookingIntent) (*models.Booking, error) {
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	room, err := s.Rooms.GetByID(intent.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up room: %w", err)
	}
	if room == nil {
		return nil, NewNotFoundError("room not found")
	}

	claimed, err := s.Rooms.Claim(intent.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim room: %w", err)
	}
	if !claimed {
		return nil, NewRoomUnavailableError("room is no longer available")
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        requester.ID,
		UserName:      requester.Name,
		RoomID:        room.ID,
		RoomName:      room.Name,
		CheckIn:       intent.CheckIn,
		CheckOut:      intent.CheckOut,
		Adults:        intent.Adults,
		Children:      intent.Children,
		TotalAmount:   intent.TotalAmount,
		PaymentMethod: models.PaymentMethodCash,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.Bookings.Create(booking); err != nil {
		// Give the claim back so the room is not stranded unavailable with
		// no booking holding it.
		if relErr := s.Rooms.Release(intent.RoomID); relErr != nil {
			s.Logger.Error("failed to release room after ledger write failure",
				zap.String("roomId", intent.RoomID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.Logger.Info("cash booking created",
		zap.String("bookingId", booking.ID),
		zap.String("roomId", booking.RoomID),
		zap.String("userId", booking.UserID))
	return booking, nil
}

// GetAllBookings returns every booking, newest first.
func (s *DefaultBookingService) GetAllBookings() ([]models.Booking, error) {
	return s.Bookings.GetAll()
}

// GetUserBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(userID)
}

// CompletedRevenue sums totalAmount over bookings with completed payments.
func (s *DefaultBookingService) CompletedRevenue() (float64, error) {
	return s.Bookings.CompletedRevenue()
}

func validateIntent(intent models.BookingIntent) error {
	if intent.RoomID == "" {
		return NewValidationError("roomId is required")
	}
	if intent.CheckIn == "" || intent.CheckOut == "" {
		return NewValidationError("checkIn and checkOut dates are required")
	}
	if intent.Adults < 1 {
		return NewValidationError("at least one adult is required")
	}
	if intent.TotalAmount <= 0 {
		return NewValidationError("totalAmount is required")
	}
	if intent.Children < 0 {
		return NewValidationError("children cannot be negative")
	}
	return nil
}
