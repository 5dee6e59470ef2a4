package models

// Gateway transaction statuses, as reported by the payment gateway.
const (
	TxStatusCreated    = "created"
	TxStatusAuthorized = "authorized"
	TxStatusCaptured   = "captured"
	TxStatusFailed     = "failed"
)

// BookingIntent is the client-supplied, not-yet-persisted booking the user
// is paying for. It travels as opaque metadata on the gateway order and is
// echoed back at verification time.
type BookingIntent struct {
	RoomID      string  `json:"roomId"`
	RoomName    string  `json:"roomName"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	TotalAmount float64 `json:"totalAmount"`
}

// PaymentOrder is the gateway order opened for a booking intent. Amount is
// in the gateway's minor units.
type PaymentOrder struct {
	OrderID  string        `json:"orderId"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	Receipt  string        `json:"receipt"`
	Intent   BookingIntent `json:"bookingDetails"`
}

// PaymentTransaction is the authoritative transaction record fetched from
// the gateway. Untrusted until the signature check has passed; Amount is in
// minor units.
type PaymentTransaction struct {
	PaymentID string
	Status    string
	Amount    int64
	Currency  string
	Method    string
}

// VerifyPaymentInput is the gateway callback payload the client relays after
// checkout.
type VerifyPaymentInput struct {
	OrderID   string        `json:"orderId"`
	PaymentID string        `json:"paymentId"`
	Signature string        `json:"signature"`
	Intent    BookingIntent `json:"bookingDetails"`
}
