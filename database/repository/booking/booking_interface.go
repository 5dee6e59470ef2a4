package bookingRepo

import "hotelify/models"

// BookingRepository defines data access for the booking ledger.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	// GetAll returns every booking, newest first.
	GetAll() ([]models.Booking, error)
	// GetByUser returns the user's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// UpdateStatus sets the lifecycle status of one booking.
	UpdateStatus(id, status string) error
	// CompletedRevenue sums totalAmount over bookings whose payment has
	// completed.
	CompletedRevenue() (float64, error)
}
