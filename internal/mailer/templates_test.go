package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestDonationNotification_RendersDetails(t *testing.T) {
	msg, err := DonationNotification("ops@example.org", DonationMail{
		DonorName: "Asha",
		Amount:    1500,
		PaymentID: "pay_123",
		OrderID:   "order_9",
		Date:      time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "ops@example.org" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != "New Donation Received - Rs. 1,500" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{"pay_123", "order_9", "not provided", "01 Mar 2025, 10:00 AM IST"} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}

func TestContactNotification_EscapesUserInput(t *testing.T) {
	msg, err := ContactNotification("ops@example.org", ContactMail{
		Name:    "<script>alert(1)</script>",
		Email:   "x@example.org",
		Subject: "Hi",
		Message: "hello",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("user input was not escaped")
	}
	if strings.Contains(msg.HTML, "Phone:") {
		t.Fatalf("empty phone should be omitted")
	}
}

func TestDonationReceipt_AddressedToDonor(t *testing.T) {
	msg, err := DonationReceipt(DonationMail{DonorName: "Ravi", DonorEmail: "ravi@example.org", Amount: 500, PaymentID: "pay_1"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if msg.To != "ravi@example.org" || msg.ToName != "Ravi" {
		t.Fatalf("unexpected recipient %+v", msg)
	}
	if !strings.Contains(msg.Text, "Rs. 500") {
		t.Fatalf("text part missing amount: %q", msg.Text)
	}
}
