package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

func TestReceiptServiceGenerate(t *testing.T) {
	email := "asha@example.org"
	loader := func(_ context.Context, id int64) (models.Donation, error) {
		return models.Donation{
			ID:         id,
			Amount:     1500,
			Currency:   "INR",
			DonorName:  "Asha Patel",
			DonorEmail: &email,
			PaymentID:  "pay_123",
			OrderID:    "order_456",
			Status:     models.DonationStatusCompleted,
			Purpose:    models.DefaultDonationPurpose,
			CreatedAt:  time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC),
		}, nil
	}

	svc := ReceiptService{Loader: loader}
	pdf, filename, err := svc.GenerateReceipt(context.Background(), 12)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "RECEIPT_12_Asha_Patel.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestReceiptServiceGenerate_NotFound(t *testing.T) {
	svc := ReceiptService{Loader: func(context.Context, int64) (models.Donation, error) {
		return models.Donation{}, domain.NotFoundError{Resource: "donation"}
	}}
	if _, _, err := svc.GenerateReceipt(context.Background(), 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReceiptNumber(t *testing.T) {
	d := models.Donation{ID: 42, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	if got := receiptNumber(d); got != "RRF-2024-000042" {
		t.Fatalf("unexpected receipt number %q", got)
	}
}
