package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/utils"
)

// PaymentVerifier checks that checkout callback parameters were signed by the provider.
type PaymentVerifier struct {
	Secret string
}

// Sign returns hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func (v PaymentVerifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(v.Secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v PaymentVerifier) Verify(orderID, paymentID, signature string) error {
	if v.Secret == "" {
		return domain.InternalError{Msg: "payment verification is not configured"}
	}
	expected := v.Sign(orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.PaymentVerificationError{OrderID: orderID, PaymentID: paymentID}
	}
	return nil
}

type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// Order is the provider order returned to the checkout client. Amount is in minor units.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
}

// RazorpayOrders creates orders through the Razorpay Orders API.
type RazorpayOrders struct {
	Client *razorpay.Client
}

func NewRazorpayOrders(keyID, keySecret string) RazorpayOrders {
	return RazorpayOrders{Client: razorpay.NewClient(keyID, keySecret)}
}

func (r RazorpayOrders) CreateOrder(_ context.Context, req OrderRequest) (Order, error) {
	notes := map[string]interface{}{}
	for k, v := range req.Notes {
		notes[k] = v
	}
	body, err := r.Client.Order.Create(map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}, nil)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay create order: %w", err)
	}

	out := Order{
		ID:       fmt.Sprint(body["id"]),
		Currency: fmt.Sprint(body["currency"]),
		Receipt:  fmt.Sprint(body["receipt"]),
	}
	switch v := body["amount"].(type) {
	case float64:
		out.Amount = int64(v)
	case int64:
		out.Amount = v
	case int:
		out.Amount = int64(v)
	default:
		out.Amount = req.AmountMinor
	}
	if out.ID == "" || out.ID == "<nil>" {
		return Order{}, fmt.Errorf("razorpay create order: response has no id")
	}
	return out, nil
}

// PaymentService prepares checkout orders for donations.
type PaymentService struct {
	Orders          OrderCreator
	DefaultCurrency string
	RequestID       string
	Now             func() time.Time
}

const minDonationAmount = 1

func (s PaymentService) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (Order, error) {
	if amount < minDonationAmount {
		return Order{}, domain.ValidationError{Field: "amount", Msg: "Invalid amount"}
	}
	if s.Orders == nil {
		return Order{}, domain.InternalError{Msg: "payment provider is not configured"}
	}
	currency = utils.UpperCode(utils.FirstNonEmpty(currency, s.DefaultCurrency, "INR"))
	if strings.TrimSpace(receipt) == "" {
		receipt = fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	}

	order, err := s.Orders.CreateOrder(ctx, OrderRequest{
		AmountMinor: utils.ToMinorUnits(amount),
		Currency:    currency,
		Receipt:     receipt,
		Notes: map[string]string{
			"purpose": "Donation to Rescue and Rehab Foundation",
			"source":  "Website",
		},
	})
	if err != nil {
		utils.LogError(s.RequestID, "payment", "create_order", err)
		return Order{}, domain.InternalError{Msg: "Failed to create payment order", Err: err}
	}
	utils.LogEvent(s.RequestID, "payment", "create_order", fmt.Sprintf("order_id=%s amount=%s %s", order.ID, utils.FormatMoney(utils.FromMinorUnits(order.Amount)), order.Currency))
	return order, nil
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
