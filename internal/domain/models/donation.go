package models

import "time"

const (
	DonationStatusCompleted = "COMPLETED"
	DefaultDonorName        = "Anonymous"
	DefaultDonationPurpose  = "General Donation"
)

// Donation is written once after the provider signature has been verified.
type Donation struct {
	ID         int64     `json:"id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	DonorName  string    `json:"donorName"`
	DonorEmail *string   `json:"donorEmail"`
	DonorPhone *string   `json:"donorPhone"`
	PaymentID  string    `json:"paymentId"`
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	Purpose    string    `json:"purpose"`
	CreatedAt  time.Time `json:"createdAt"`
}

// HasDonorEmail reports whether a receipt can be sent.
func (d Donation) HasDonorEmail() bool {
	return d.DonorEmail != nil && *d.DonorEmail != ""
}

// DonationSummary aggregates the donation table for the admin dashboard.
type DonationSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
