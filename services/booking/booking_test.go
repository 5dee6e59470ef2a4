package booking

import (
	"errors"
	"testing"

	"hotelify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testRoom() *models.Room {
	return &models.Room{
		ID:        "room-1",
		Name:      "Deluxe Suite",
		Type:      "suite",
		Price:     150,
		Capacity:  models.RoomCapacity{Adults: 2, Children: 1},
		Available: true,
	}
}

func testIntent() models.BookingIntent {
	return models.BookingIntent{
		RoomID:      "room-1",
		RoomName:    "Deluxe Suite",
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-03",
		Adults:      2,
		Children:    0,
		TotalAmount: 300,
	}
}

func newTestService(t *testing.T, rooms *fakeRoomRepo, bookings *fakeBookingRepo, gw *fakeGateway) *DefaultBookingService {
	t.Helper()
	return NewBookingService(rooms, bookings, gw, "test-secret", "INR", zaptest.NewLogger(t))
}

func TestCreateCashBooking(t *testing.T) {
	requester := models.Requester{ID: "user-1", Name: "Alice"}

	t.Run("claims the room and records a pending booking", func(t *testing.T) {
		rooms := newFakeRoomRepo(testRoom())
		bookings := newFakeBookingRepo()
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		bk, err := svc.CreateCashBooking(requester, testIntent())
		require.NoError(t, err)
		require.NotNil(t, bk)

		assert.Equal(t, models.BookingStatusPending, bk.Status)
		assert.Equal(t, models.PaymentStatusPending, bk.PaymentStatus)
		assert.Equal(t, models.PaymentMethodCash, bk.PaymentMethod)
		assert.Equal(t, "user-1", bk.UserID)
		assert.Equal(t, "Deluxe Suite", bk.RoomName)
		assert.NotEmpty(t, bk.ID)
		assert.False(t, rooms.available("room-1"))
		assert.Equal(t, 1, bookings.count())
	})

	t.Run("rejects an invalid intent before touching the room", func(t *testing.T) {
		rooms := newFakeRoomRepo(testRoom())
		svc := newTestService(t, rooms, newFakeBookingRepo(), &fakeGateway{})

		cases := []struct {
			name   string
			mutate func(*models.BookingIntent)
		}{
			{"missing room", func(i *models.BookingIntent) { i.RoomID = "" }},
			{"missing dates", func(i *models.BookingIntent) { i.CheckIn = "" }},
			{"no adults", func(i *models.BookingIntent) { i.Adults = 0 }},
			{"zero amount", func(i *models.BookingIntent) { i.TotalAmount = 0 }},
			{"negative children", func(i *models.BookingIntent) { i.Children = -1 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				intent := testIntent()
				tc.mutate(&intent)
				_, err := svc.CreateCashBooking(requester, intent)
				assert.Equal(t, CodeValidation, CodeOf(err))
			})
		}
		assert.Equal(t, 0, rooms.claims)
	})

	t.Run("unknown room yields notFound", func(t *testing.T) {
		svc := newTestService(t, newFakeRoomRepo(), newFakeBookingRepo(), &fakeGateway{})
		intent := testIntent()
		intent.RoomID = "missing"
		_, err := svc.CreateCashBooking(requester, intent)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})

	t.Run("losing the claim yields roomUnavailable", func(t *testing.T) {
		room := testRoom()
		room.Available = false
		rooms := newFakeRoomRepo(room)
		bookings := newFakeBookingRepo()
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		_, err := svc.CreateCashBooking(requester, testIntent())
		assert.Equal(t, CodeRoomUnavailable, CodeOf(err))
		assert.Equal(t, 0, bookings.count())
	})

	t.Run("ledger write failure releases the claim", func(t *testing.T) {
		rooms := newFakeRoomRepo(testRoom())
		bookings := newFakeBookingRepo()
		bookings.createErr = errors.New("write failed")
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		_, err := svc.CreateCashBooking(requester, testIntent())
		require.Error(t, err)
		assert.Empty(t, CodeOf(err))
		assert.True(t, rooms.available("room-1"), "room must not stay claimed without a booking")
	})

	t.Run("second booking on the same room loses the claim", func(t *testing.T) {
		rooms := newFakeRoomRepo(testRoom())
		bookings := newFakeBookingRepo()
		svc := newTestService(t, rooms, bookings, &fakeGateway{})

		_, err := svc.CreateCashBooking(requester, testIntent())
		require.NoError(t, err)

		_, err = svc.CreateCashBooking(models.Requester{ID: "user-2", Name: "Bob"}, testIntent())
		assert.Equal(t, CodeRoomUnavailable, CodeOf(err))
		assert.Equal(t, 1, bookings.count())
	})
}

func TestCompletedRevenue(t *testing.T) {
	bookings := newFakeBookingRepo(
		&models.Booking{ID: "b1", TotalAmount: 300, PaymentStatus: models.PaymentStatusCompleted},
		&models.Booking{ID: "b2", TotalAmount: 200, PaymentStatus: models.PaymentStatusPending},
		&models.Booking{ID: "b3", TotalAmount: 150, PaymentStatus: models.PaymentStatusCompleted},
	)
	svc := newTestService(t, newFakeRoomRepo(), bookings, &fakeGateway{})

	total, err := svc.CompletedRevenue()
	require.NoError(t, err)
	assert.Equal(t, 450.0, total)
}
