package booking

import (
	"errors"
	"sync"

	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeRoomRepo is an in-memory RoomRepository with the same claim semantics
// as the Mongo implementation: Claim only succeeds on an available room.
type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*models.Room

	claimErr   error
	releaseErr error

	claims   int
	releases int
	holds    int
}

func newFakeRoomRepo(rooms ...*models.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[string]*models.Room)}
	for _, r := range rooms {
		cp := *r
		f.rooms[r.ID] = &cp
	}
	return f
}

func (f *fakeRoomRepo) Create(room *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *room
	f.rooms[room.ID] = &cp
	return nil
}

func (f *fakeRoomRepo) GetByID(id string) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoomRepo) GetAvailable() ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Room
	for _, r := range f.rooms {
		if r.Available {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) GetAll() ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Room
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return errors.New("not implemented")
}

func (f *fakeRoomRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) Claim(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claims++
	if f.claimErr != nil {
		return false, f.claimErr
	}
	r, ok := f.rooms[id]
	if !ok || !r.Available {
		return false, nil
	}
	r.Available = false
	return true, nil
}

func (f *fakeRoomRepo) Release(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases++
	if f.releaseErr != nil {
		return f.releaseErr
	}
	if r, ok := f.rooms[id]; ok {
		r.Available = true
	}
	return nil
}

func (f *fakeRoomRepo) Hold(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.holds++
	if r, ok := f.rooms[id]; ok {
		r.Available = false
	}
	return nil
}

func (f *fakeRoomRepo) available(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[id]
	return ok && r.Available
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	createErr error
	statusErr error
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		cp := *b
		f.bookings[b.ID] = &cp
	}
	return f
}

func (f *fakeBookingRepo) Create(booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) CompletedRevenue() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, b := range f.bookings {
		if b.PaymentStatus == models.PaymentStatusCompleted {
			total += b.TotalAmount
		}
	}
	return total, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

// fakeGateway is a scripted payment gateway.
type fakeGateway struct {
	createOrderResp *models.PaymentOrder
	createOrderErr  error

	fetchResp *models.PaymentTransaction
	fetchErr  error

	captureErr error

	orderCalls   int
	fetchCalls   int
	captureCalls int

	capturedID     string
	capturedAmount int64
}

func (f *fakeGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*models.PaymentOrder, error) {
	f.orderCalls++
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	if f.createOrderResp != nil {
		return f.createOrderResp, nil
	}
	return &models.PaymentOrder{
		OrderID:  "order_test",
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (f *fakeGateway) FetchPayment(paymentID string) (*models.PaymentTransaction, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetchResp, nil
}

func (f *fakeGateway) CapturePayment(paymentID string, amountMinor int64, currency string) error {
	f.captureCalls++
	f.capturedID = paymentID
	f.capturedAmount = amountMinor
	return f.captureErr
}
