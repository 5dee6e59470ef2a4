package booking

import (
	"testing"

	"hotelify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingCashBooking() *models.Booking {
	return &models.Booking{
		ID:            "bk-1",
		UserID:        "user-1",
		RoomID:        "room-1",
		Status:        models.BookingStatusPending,
		PaymentMethod: models.PaymentMethodCash,
		PaymentStatus: models.PaymentStatusPending,
		TotalAmount:   300,
	}
}

func heldRoom() *models.Room {
	r := testRoom()
	r.Available = false
	return r
}

func TestCancelBooking(t *testing.T) {
	owner := models.Requester{ID: "user-1", Name: "Alice"}
	admin := models.Requester{ID: "admin-1", Name: "root", Admin: true}

	t.Run("owner cancels and the room is freed", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		bk, err := svc.CancelBooking(owner, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, bk.Status)
		assert.True(t, rooms.available("room-1"))
	})

	t.Run("admin may cancel someone else's booking", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		bk, err := svc.CancelBooking(admin, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, bk.Status)
	})

	t.Run("a stranger is refused", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		_, err := svc.CancelBooking(models.Requester{ID: "user-2", Name: "Mallory"}, "bk-1")
		assert.Equal(t, CodeAuthorization, CodeOf(err))
		assert.False(t, rooms.available("room-1"))
	})

	t.Run("unknown booking yields notFound", func(t *testing.T) {
		svc := newTestService(t, newFakeRoomRepo(), newFakeBookingRepo(), &fakeGateway{})
		_, err := svc.CancelBooking(owner, "missing")
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("second cancel is an idempotent no-op", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		_, err := svc.CancelBooking(owner, "bk-1")
		require.NoError(t, err)

		bk, err := svc.CancelBooking(owner, "bk-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, bk.Status)
		assert.True(t, rooms.available("room-1"))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("pending cash booking may only be confirmed or rejected", func(t *testing.T) {
		for _, target := range []string{
			models.BookingStatusCompleted,
			models.BookingStatusCancelled,
		} {
			rooms := newFakeRoomRepo(heldRoom())
			bookings := newFakeBookingRepo(pendingCashBooking())
			svc := newTestService(t, rooms, bookings, &fakeGateway{})

			_, err := svc.UpdateStatus("bk-1", target)
			assert.Equal(t, CodeInvalidTransition, CodeOf(err), "target %s", target)

			got, _ := bookings.GetByID("bk-1")
			assert.Equal(t, models.BookingStatusPending, got.Status)
		}
	})

	t.Run("pending is never a reachable target", func(t *testing.T) {
		confirmedOnline := pendingCashBooking()
		confirmedOnline.Status = models.BookingStatusConfirmed
		confirmedOnline.PaymentMethod = models.PaymentMethodOnline
		confirmedOnline.PaymentStatus = models.PaymentStatusCompleted

		for name, bk := range map[string]*models.Booking{
			"cash booking under review": pendingCashBooking(),
			"confirmed online booking":  confirmedOnline,
		} {
			rooms := newFakeRoomRepo(heldRoom())
			bookings := newFakeBookingRepo(bk)
			svc := newTestService(t, rooms, bookings, &fakeGateway{})

			_, err := svc.UpdateStatus("bk-1", models.BookingStatusPending)
			assert.Equal(t, CodeValidation, CodeOf(err), name)

			got, _ := bookings.GetByID("bk-1")
			assert.Equal(t, bk.Status, got.Status, name)
			assert.False(t, rooms.available("room-1"), name)
		}
	})

	t.Run("confirming keeps the room held", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		bk, err := svc.UpdateStatus("bk-1", models.BookingStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, bk.Status)
		assert.False(t, rooms.available("room-1"))
	})

	t.Run("rejecting frees the room", func(t *testing.T) {
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(pendingCashBooking())
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		bk, err := svc.UpdateStatus("bk-1", models.BookingStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusRejected, bk.Status)
		assert.True(t, rooms.available("room-1"))
	})

	t.Run("completing a confirmed booking frees the room", func(t *testing.T) {
		bk := pendingCashBooking()
		bk.Status = models.BookingStatusConfirmed
		rooms := newFakeRoomRepo(heldRoom())
		bookings := newFakeBookingRepo(bk)
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		got, err := svc.UpdateStatus("bk-1", models.BookingStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCompleted, got.Status)
		assert.True(t, rooms.available("room-1"))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := newTestService(t, newFakeRoomRepo(), newFakeBookingRepo(), &fakeGateway{})
		_, err := svc.UpdateStatus("bk-1", "archived")
		assert.Equal(t, CodeValidation, CodeOf(err))
	})

	t.Run("unknown booking yields notFound", func(t *testing.T) {
		svc := newTestService(t, newFakeRoomRepo(), newFakeBookingRepo(), &fakeGateway{})
		_, err := svc.UpdateStatus("missing", models.BookingStatusConfirmed)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})
}
