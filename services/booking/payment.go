package booking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"hotelify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePaymentOrder opens a gateway order for a booking intent. The amount
// is converted to the gateway's minor units and the intent rides along as
// order notes. No local state is written; the booking only exists once the
// payment verifies.
func (s *DefaultBookingService) CreatePaymentOrder(requester models.Requester, amount float64, intent models.BookingIntent) (*models.PaymentOrder, error) {
	if amount <= 0 {
		return nil, NewValidationError("amount is required")
	}
	if err := validateIntent(intent); err != nil {
		return nil, err
	}

	// Round rather than truncate: float64 cannot represent most decimal
	// amounts exactly, and 19.99*100 lands just under 1999.
	amountMinor := int64(math.Round(amount * 100))
	receipt := fmt.Sprintf("booking_%d", time.Now().UnixMilli())
	notes := map[string]interface{}{
		"roomId":   intent.RoomID,
		"roomName": intent.RoomName,
		"checkIn":  intent.CheckIn,
		"checkOut": intent.CheckOut,
		"adults":   intent.Adults,
		"children": intent.Children,
		"userId":   requester.ID,
	}

	order, err := s.Gateway.CreateOrder(amountMinor, s.Currency, receipt, notes)
	if err != nil {
		s.Logger.Error("payment order creation failed", zap.Error(err))
		return nil, NewGatewayError("failed to create payment order")
	}
	order.Intent = intent

	s.Logger.Info("payment order created",
		zap.String("orderId", order.OrderID),
		zap.Int64("amount", order.Amount),
		zap.String("userId", requester.ID))
	return order, nil
}

// VerifyPayment runs the verification pipeline: presence check, signature
// check, authoritative fetch, capture if still authorized, then booking
// persistence from the gateway-reported figures. Once the signature check
// passes the pipeline runs to completion or reports a partial failure; there
// are no retries at any step.
func (s *DefaultBookingService) VerifyPayment(requester models.Requester, input models.VerifyPaymentInput) (*models.Booking, error) {
	if input.OrderID == "" || input.PaymentID == "" || input.Signature == "" || input.Intent.RoomID == "" {
		return nil, NewValidationError("missing required payment details")
	}

	if !s.signatureValid(input.OrderID, input.PaymentID, input.Signature) {
		s.Logger.Warn("payment signature mismatch",
			zap.String("orderId", input.OrderID),
			zap.String("paymentId", input.PaymentID),
			zap.String("userId", requester.ID))
		return nil, NewSecurityError("invalid payment signature")
	}

	tx, err := s.Gateway.FetchPayment(input.PaymentID)
	if err != nil {
		s.Logger.Error("payment fetch failed", zap.String("paymentId", input.PaymentID), zap.Error(err))
		return nil, NewGatewayError("failed to fetch payment from gateway")
	}

	if tx.Status != models.TxStatusCaptured && tx.Status != models.TxStatusAuthorized {
		return nil, NewPaymentStateError(fmt.Sprintf("invalid payment status: %s", tx.Status))
	}

	if tx.Status == models.TxStatusAuthorized {
		if err := s.Gateway.CapturePayment(input.PaymentID, tx.Amount, tx.Currency); err != nil {
			s.Logger.Error("payment capture failed", zap.String("paymentId", input.PaymentID), zap.Error(err))
			return nil, NewGatewayError("failed to capture payment")
		}
	}

	// Persist the gateway-reported amount and currency, never the
	// client-supplied figures.
	bk := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          requester.ID,
		UserName:        requester.Name,
		RoomID:          input.Intent.RoomID,
		RoomName:        input.Intent.RoomName,
		CheckIn:         input.Intent.CheckIn,
		CheckOut:        input.Intent.CheckOut,
		Adults:          input.Intent.Adults,
		Children:        input.Intent.Children,
		TotalAmount:     input.Intent.TotalAmount,
		PaymentMethod:   models.PaymentMethodOnline,
		PaymentStatus:   models.PaymentStatusCompleted,
		Status:          models.BookingStatusConfirmed,
		OrderID:         input.OrderID,
		PaymentID:       input.PaymentID,
		PaymentAmount:   float64(tx.Amount) / 100,
		PaymentCurrency: tx.Currency,
		CreatedAt:       time.Now(),
	}

	if err := s.Bookings.Create(bk); err != nil {
		// Money has been captured but no booking exists. This must reach an
		// operator, never be reported as a generic failure.
		s.Logger.Error("payment captured but booking persistence failed",
			zap.String("orderId", input.OrderID),
			zap.String("paymentId", input.PaymentID),
			zap.String("userId", requester.ID),
			zap.Error(err))
		return nil, NewPartialFailureError("payment captured but booking creation failed; manual reconciliation required")
	}

	// A captured payment outranks a stale availability flag, so the hold is
	// unconditional here.
	if err := s.Rooms.Hold(input.Intent.RoomID); err != nil {
		s.Logger.Error("booking created but room hold failed",
			zap.String("bookingId", bk.ID), zap.String("roomId", bk.RoomID), zap.Error(err))
	}

	s.Logger.Info("payment verified and booking created",
		zap.String("bookingId", bk.ID),
		zap.String("paymentId", input.PaymentID))
	return bk, nil
}

// signatureValid recomputes the HMAC-SHA256 of "orderId|paymentId" under the
// gateway shared secret and compares it to the supplied signature in
// constant time. This is the sole authenticity check on the callback.
func (s *DefaultBookingService) signatureValid(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.GatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
