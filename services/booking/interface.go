package booking

import "hotelify/models"

// BookingService orchestrates the booking ledger, the room catalog, and the
// payment gateway so that booking status, payment state, and room
// availability stay mutually consistent.
type BookingService interface {
	// CreateCashBooking records a pay-at-desk booking and claims the room.
	CreateCashBooking(requester models.Requester, intent models.BookingIntent) (*models.Booking, error)

	// CreatePaymentOrder opens a gateway order for a booking intent. Nothing
	// is persisted locally; the booking only materializes once the payment
	// verifies.
	CreatePaymentOrder(requester models.Requester, amount float64, intent models.BookingIntent) (*models.PaymentOrder, error)

	// VerifyPayment authenticates a gateway callback, captures the payment
	// if needed, and materializes the booking.
	VerifyPayment(requester models.Requester, input models.VerifyPaymentInput) (*models.Booking, error)

	// CancelBooking cancels a booking on behalf of its owner or an admin and
	// frees the room. Cancelling an already-cancelled booking is a no-op.
	CancelBooking(requester models.Requester, bookingID string) (*models.Booking, error)

	// UpdateStatus performs an admin status transition, enforcing the
	// cash-pending gate, and reconciles room availability.
	UpdateStatus(bookingID, target string) (*models.Booking, error)

	GetAllBookings() ([]models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	CompletedRevenue() (float64, error)
}
