package payment

import (
	"fmt"

	"hotelify/config"
	"hotelify/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway is the external payment collaborator. Amounts cross this boundary
// in the gateway's minor units (paise for INR).
type Gateway interface {
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*models.PaymentOrder, error)
	FetchPayment(paymentID string) (*models.PaymentTransaction, error)
	CapturePayment(paymentID string, amountMinor int64, currency string) error
}

// RazorpayGateway implements Gateway against the Razorpay REST API.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds a gateway client from the configured key pair.
// Calls time out after 10 seconds.
func NewRazorpayGateway() *RazorpayGateway {
	client := razorpay.NewClient(config.AppConfig.GatewayKeyID, config.AppConfig.GatewayKeySecret)
	client.SetTimeout(10)
	return &RazorpayGateway{client: client}
}

// CreateOrder opens a gateway order carrying the booking intent as notes.
func (g *RazorpayGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*models.PaymentOrder, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
		"notes":           notes,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}

	return &models.PaymentOrder{
		OrderID:  stringField(order, "id"),
		Amount:   int64Field(order, "amount"),
		Currency: stringField(order, "currency"),
		Receipt:  stringField(order, "receipt"),
	}, nil
}

// FetchPayment retrieves the authoritative transaction record.
func (g *RazorpayGateway) FetchPayment(paymentID string) (*models.PaymentTransaction, error) {
	payment, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway payment fetch failed: %w", err)
	}

	return &models.PaymentTransaction{
		PaymentID: stringField(payment, "id"),
		Status:    stringField(payment, "status"),
		Amount:    int64Field(payment, "amount"),
		Currency:  stringField(payment, "currency"),
		Method:    stringField(payment, "method"),
	}, nil
}

// CapturePayment finalizes an authorized payment for the full amount.
func (g *RazorpayGateway) CapturePayment(paymentID string, amountMinor int64, currency string) error {
	data := map[string]interface{}{
		"currency": currency,
	}
	if _, err := g.client.Payment.Capture(paymentID, int(amountMinor), data, nil); err != nil {
		return fmt.Errorf("gateway payment capture failed: %w", err)
	}
	return nil
}

// stringField reads a string out of a gateway response map.
func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// int64Field reads a numeric field out of a gateway response map. Razorpay
// amounts arrive as JSON numbers decoded into float64.
func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
