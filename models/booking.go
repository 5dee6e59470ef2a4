package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment methods.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

// Booking is the ledger record of a booking intent and its lifecycle state.
// User and room names are denormalized at creation time.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	UserName      string    `bson:"user_name" json:"userName"`
	RoomID        string    `bson:"room_id" json:"roomId"`
	RoomName      string    `bson:"room_name" json:"roomName"`
	CheckIn       string    `bson:"check_in" json:"checkIn"`
	CheckOut      string    `bson:"check_out" json:"checkOut"`
	Adults        int       `bson:"adults" json:"adults"`
	Children      int       `bson:"children" json:"children"`
	TotalAmount   float64   `bson:"total_amount" json:"totalAmount"`
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	Status        string    `bson:"status" json:"status"`
	OrderID       string    `bson:"order_id,omitempty" json:"orderId,omitempty"`
	PaymentID     string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	// Amount and currency as reported by the gateway for online bookings.
	PaymentAmount   float64   `bson:"payment_amount,omitempty" json:"paymentAmount,omitempty"`
	PaymentCurrency string    `bson:"payment_currency,omitempty" json:"paymentCurrency,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// HoldsRoom reports whether the booking keeps its room unavailable: a cash
// booking awaiting admin review, or any confirmed booking.
func (b *Booking) HoldsRoom() bool {
	if b.Status == BookingStatusConfirmed {
		return true
	}
	return b.Status == BookingStatusPending && b.PaymentMethod == PaymentMethodCash
}
