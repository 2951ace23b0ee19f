package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

// ReceiptService renders donation receipts as PDF.
type ReceiptService struct {
	DonationRepo repositories.DonationRepository
	RequestID    string
	Loader       func(context.Context, int64) (models.Donation, error)
}

func (s ReceiptService) GenerateReceipt(ctx context.Context, donationID int64) ([]byte, string, error) {
	d, err := s.load(ctx, donationID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("donation_id=%d", donationID))
	return buildReceiptPDF(d)
}

func (s ReceiptService) load(ctx context.Context, id int64) (models.Donation, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.DonationRepo.GetByID(ctx, id)
}

func receiptNumber(d models.Donation) string {
	return fmt.Sprintf("RRF-%s-%06d", d.CreatedAt.Format("2006"), d.ID)
}

func buildReceiptPDF(d models.Donation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Donation Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DONATION RECEIPT")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Rescue and Rehab Foundation, Navsari, Gujarat, India")
	pdf.Ln(12)

	donorEmail := "-"
	if d.DonorEmail != nil {
		donorEmail = *d.DonorEmail
	}
	donorPhone := "-"
	if d.DonorPhone != nil {
		donorPhone = *d.DonorPhone
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No   : %s", receiptNumber(d)),
		fmt.Sprintf("Date         : %s", utils.FormatDate(d.CreatedAt)),
		fmt.Sprintf("Donor        : %s", safe(d.DonorName, models.DefaultDonorName)),
		fmt.Sprintf("Email        : %s", safe(donorEmail, "-")),
		fmt.Sprintf("Phone        : %s", safe(donorPhone, "-")),
		fmt.Sprintf("Purpose      : %s", safe(d.Purpose, models.DefaultDonationPurpose)),
		fmt.Sprintf("Payment ID   : %s", safe(d.PaymentID, "-")),
		fmt.Sprintf("Order ID     : %s", safe(d.OrderID, "-")),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %s %s", utils.FormatMoney(d.Amount), safe(d.Currency, "INR")))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your generous support. Your contribution helps us provide food, medical care and shelter for rescued animals.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.ID, utils.SafeFilenamePart(d.DonorName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

