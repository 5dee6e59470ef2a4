package booking

import (
	"fmt"

	"hotelify/models"

	"go.uber.org/zap"
)

// CancelBooking cancels a booking on behalf of its owner or an admin and
// frees the room. A second cancel of the same booking is accepted as a
// no-op: it re-asserts the terminal state instead of failing.
func (s *DefaultBookingService) CancelBooking(requester models.Requester, bookingID string) (*models.Booking, error) {
	bk, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if bk == nil {
		return nil, NewNotFoundError("booking not found")
	}

	if bk.UserID != requester.ID && !requester.Admin {
		return nil, NewAuthorizationError("not authorized to cancel this booking")
	}

	if bk.Status == models.BookingStatusCancelled {
		// Idempotent: re-assert the room is free and report success.
		if err := s.Rooms.Release(bk.RoomID); err != nil {
			s.Logger.Error("failed to re-assert room release on repeat cancel",
				zap.String("bookingId", bk.ID), zap.String("roomId", bk.RoomID), zap.Error(err))
		}
		return bk, nil
	}

	if err := s.Bookings.UpdateStatus(bk.ID, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	bk.Status = models.BookingStatusCancelled

	if err := s.Rooms.Release(bk.RoomID); err != nil {
		s.Logger.Error("booking cancelled but room release failed",
			zap.String("bookingId", bk.ID), zap.String("roomId", bk.RoomID), zap.Error(err))
	}

	s.Logger.Info("booking cancelled",
		zap.String("bookingId", bk.ID),
		zap.String("cancelledBy", requester.ID))
	return bk, nil
}
