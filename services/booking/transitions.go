package booking

import (
	"fmt"

	"hotelify/models"

	"go.uber.org/zap"
)

// UpdateStatus performs an administrative status transition. Admins may
// only move a booking to confirmed, rejected, cancelled or completed;
// pending is not a reachable target. A cash booking still pending review
// may only move to confirmed or rejected; any terminal transition frees the
// room, while confirmation keeps it held.
func (s *DefaultBookingService) UpdateStatus(bookingID, target string) (*models.Booking, error) {
	if !transitionTarget(target) {
		return nil, NewValidationError(fmt.Sprintf("invalid status: %s", target))
	}

	bk, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	if bk == nil {
		return nil, NewNotFoundError("booking not found")
	}

	if bk.PaymentMethod == models.PaymentMethodCash && bk.Status == models.BookingStatusPending {
		if target != models.BookingStatusConfirmed && target != models.BookingStatusRejected {
			return nil, NewInvalidTransitionError(
				fmt.Sprintf("a pending cash booking can only be confirmed or rejected, not %s", target))
		}
	}

	if err := s.Bookings.UpdateStatus(bk.ID, target); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	bk.Status = target

	// Room was claimed at creation; confirmation keeps the hold, every
	// other reachable target releases it.
	if !bk.HoldsRoom() {
		if err := s.Rooms.Release(bk.RoomID); err != nil {
			s.Logger.Error("status updated but room release failed",
				zap.String("bookingId", bk.ID), zap.String("roomId", bk.RoomID), zap.Error(err))
		}
	}

	s.Logger.Info("booking status updated",
		zap.String("bookingId", bk.ID),
		zap.String("status", target))
	return bk, nil
}

// transitionTarget reports whether s is a status an admin transition may
// land on. Bookings start out pending; they never return to it.
func transitionTarget(s string) bool {
	switch s {
	case models.BookingStatusConfirmed, models.BookingStatusRejected,
		models.BookingStatusCancelled, models.BookingStatusCompleted:
		return true
	}
	return false
}
