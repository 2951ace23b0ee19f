package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rescuerehab/internal/domain"
)

func TestPaymentVerifier_AcceptsProviderSignature(t *testing.T) {
	v := PaymentVerifier{Secret: "s3cret"}
	sig := v.Sign("order_1", "pay_1")
	if len(sig) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(sig))
	}
	if err := v.Verify("order_1", "pay_1", sig); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
}

func TestPaymentVerifier_RejectsTampering(t *testing.T) {
	v := PaymentVerifier{Secret: "s3cret"}
	sig := v.Sign("order_1", "pay_1")

	cases := []struct {
		name, order, payment, sig string
	}{
		{"other payment", "order_1", "pay_2", sig},
		{"other order", "order_2", "pay_1", sig},
		{"wrong secret", "order_1", "pay_1", PaymentVerifier{Secret: "other"}.Sign("order_1", "pay_1")},
		{"garbage", "order_1", "pay_1", "deadbeef"},
		{"upper case", "order_1", "pay_1", strings.ToUpper(sig)},
		{"padded", "order_1", "pay_1", " " + sig + " "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Verify(tc.order, tc.payment, tc.sig)
			if !errors.Is(err, domain.ErrPaymentVerificationFailed) {
				t.Fatalf("expected verification failure, got %v", err)
			}
		})
	}
}

func TestPaymentVerifier_NoSecretIsInternal(t *testing.T) {
	if err := (PaymentVerifier{}).Verify("o", "p", "s"); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestPaymentServiceCreateOrder_ConvertsToPaise(t *testing.T) {
	orders := &fakeOrders{}
	svc := PaymentService{
		Orders:          orders,
		DefaultCurrency: "INR",
		Now:             func() time.Time { return time.UnixMilli(1700000000000) },
	}

	order, err := svc.CreateOrder(context.Background(), 499.99, "", "")
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if orders.req.AmountMinor != 49999 {
		t.Fatalf("expected 49999 paise, got %d", orders.req.AmountMinor)
	}
	if order.Currency != "INR" || order.Receipt != "receipt_1700000000000" {
		t.Fatalf("unexpected order %+v", order)
	}
	if orders.req.Notes["source"] != "Website" {
		t.Fatalf("notes not set: %v", orders.req.Notes)
	}
}

func TestPaymentServiceCreateOrder_Validation(t *testing.T) {
	svc := PaymentService{Orders: &fakeOrders{}}
	for _, amount := range []float64{0, 0.5, -10} {
		if _, err := svc.CreateOrder(context.Background(), amount, "INR", ""); !domain.IsValidation(err) {
			t.Fatalf("amount %v: expected validation error, got %v", amount, err)
		}
	}
}

func TestPaymentServiceCreateOrder_ProviderFailure(t *testing.T) {
	svc := PaymentService{Orders: &fakeOrders{err: errBoom}}
	_, err := svc.CreateOrder(context.Background(), 100, "INR", "r1")
	if !domain.IsInternal(err) || !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped internal error, got %v", err)
	}
}
