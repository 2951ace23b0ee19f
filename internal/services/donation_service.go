package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/notifier"
	"rescuerehab/internal/repositories"
	"rescuerehab/internal/utils"
)

// VerifyPaymentInput is the checkout callback plus the donor form fields.
type VerifyPaymentInput struct {
	OrderID    string
	PaymentID  string
	Signature  string
	Amount     float64
	DonorName  string
	DonorEmail string
	DonorPhone string
}

type DonationStore interface {
	Create(ctx context.Context, d models.Donation) (int64, error)
	GetByPaymentID(ctx context.Context, paymentID string) (models.Donation, error)
}

// DonationHook runs after a donation row is committed. Failures never reach the caller.
type DonationHook interface {
	Name() string
	AfterRecord(ctx context.Context, d models.Donation) error
}

type DonationResult struct {
	Donation models.Donation
	Replayed bool
}

type DonationService struct {
	Verifier    PaymentVerifier
	Store       DonationStore
	Hooks       []DonationHook
	Currency    string
	RequestID   string
	HookTimeout time.Duration
	Now         func() time.Time
}

// Record verifies the callback, writes the donation once and then runs the hooks.
// A replayed payment id returns the stored donation and runs no hooks.
func (s DonationService) Record(ctx context.Context, in VerifyPaymentInput) (DonationResult, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	switch {
	case in.OrderID == "":
		return DonationResult{}, domain.Required("razorpay_order_id")
	case in.PaymentID == "":
		return DonationResult{}, domain.Required("razorpay_payment_id")
	case strings.TrimSpace(in.Signature) == "":
		return DonationResult{}, domain.Required("razorpay_signature")
	}

	if err := s.Verifier.Verify(in.OrderID, in.PaymentID, in.Signature); err != nil {
		if domain.IsPaymentVerification(err) {
			utils.LogEvent(s.RequestID, "donation", "verify", "signature mismatch order_id="+in.OrderID)
		}
		return DonationResult{}, err
	}
	if in.Amount <= 0 {
		return DonationResult{}, domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}

	d := models.Donation{
		Amount:     in.Amount,
		Currency:   utils.FirstNonEmpty(s.Currency, "INR"),
		DonorName:  utils.FirstNonEmpty(utils.NormalizeSpace(in.DonorName), models.DefaultDonorName),
		DonorEmail: optional(in.DonorEmail),
		DonorPhone: optional(in.DonorPhone),
		PaymentID:  in.PaymentID,
		OrderID:    in.OrderID,
		Status:     models.DonationStatusCompleted,
		Purpose:    models.DefaultDonationPurpose,
		CreatedAt:  s.now().UTC().Truncate(time.Millisecond),
	}

	id, err := s.store().Create(ctx, d)
	if errors.Is(err, repositories.ErrDuplicatePayment) {
		existing, getErr := s.store().GetByPaymentID(ctx, in.PaymentID)
		if getErr != nil {
			return DonationResult{}, domain.InternalError{Msg: "Payment verification failed", Err: getErr}
		}
		utils.LogEvent(s.RequestID, "donation", "verify", fmt.Sprintf("replayed payment_id=%s donation_id=%d", in.PaymentID, existing.ID))
		return DonationResult{Donation: existing, Replayed: true}, nil
	}
	if err != nil {
		utils.LogError(s.RequestID, "donation", "insert", err)
		return DonationResult{}, domain.InternalError{Msg: "Payment verification failed", Err: err}
	}

	d.ID = id
	utils.LogEvent(s.RequestID, "donation", "verify", fmt.Sprintf("recorded donation_id=%d payment_id=%s", d.ID, d.PaymentID))

	s.runHooks(ctx, d)
	return DonationResult{Donation: d}, nil
}

func (s DonationService) runHooks(ctx context.Context, d models.Donation) {
	timeout := s.HookTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	base := context.WithoutCancel(ctx)
	for _, h := range s.Hooks {
		func() {
			hctx, cancel := context.WithTimeout(base, timeout)
			defer cancel()
			defer func() {
				if r := recover(); r != nil {
					utils.LogError(s.RequestID, "donation", h.Name(), fmt.Errorf("panic: %v", r))
				}
			}()
			if err := h.AfterRecord(hctx, d); err != nil {
				utils.LogError(s.RequestID, "donation", h.Name(), err)
			}
		}()
	}
}

func (s DonationService) store() DonationStore {
	if s.Store != nil {
		return s.Store
	}
	return repositories.DonationRepository{}
}

func (s DonationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func donationMail(d models.Donation) mailer.DonationMail {
	m := mailer.DonationMail{
		DonorName: d.DonorName,
		Amount:    d.Amount,
		PaymentID: d.PaymentID,
		OrderID:   d.OrderID,
		Date:      d.CreatedAt,
	}
	if d.DonorEmail != nil {
		m.DonorEmail = *d.DonorEmail
	}
	if d.DonorPhone != nil {
		m.DonorPhone = *d.DonorPhone
	}
	return m
}

// OperatorNotification mails the organisation inbox about every new donation.
type OperatorNotification struct {
	Mailer mailer.Mailer
	To     string
}

func (OperatorNotification) Name() string { return "operator_notification" }

func (h OperatorNotification) AfterRecord(ctx context.Context, d models.Donation) error {
	if h.To == "" {
		return errors.New("operator email is not configured")
	}
	msg, err := mailer.DonationNotification(h.To, donationMail(d))
	if err != nil {
		return err
	}
	return h.Mailer.Send(ctx, msg)
}

// DonorReceipt thanks the donor when an email address was given.
type DonorReceipt struct {
	Mailer mailer.Mailer
}

func (DonorReceipt) Name() string { return "donor_receipt" }

func (h DonorReceipt) AfterRecord(ctx context.Context, d models.Donation) error {
	if !d.HasDonorEmail() {
		return nil
	}
	msg, err := mailer.DonationReceipt(donationMail(d))
	if err != nil {
		return err
	}
	return h.Mailer.Send(ctx, msg)
}

// EventPublish forwards the donation to the configured event sink.
type EventPublish struct {
	Notifier notifier.Notifier
}

func (EventPublish) Name() string { return "event_publish" }

func (h EventPublish) AfterRecord(ctx context.Context, d models.Donation) error {
	ev := notifier.DonationEvent{
		DonationID: d.ID,
		PaymentID:  d.PaymentID,
		OrderID:    d.OrderID,
		DonorName:  d.DonorName,
		Amount:     d.Amount,
		Currency:   d.Currency,
		CreatedAt:  d.CreatedAt,
	}
	if d.DonorEmail != nil {
		ev.DonorEmail = *d.DonorEmail
	}
	return h.Notifier.Notify(ctx, ev)
}

// DefaultDonationHooks is the production hook order: operator mail, donor receipt, event.
func DefaultDonationHooks(m mailer.Mailer, operatorEmail string, n notifier.Notifier) []DonationHook {
	hooks := []DonationHook{
		OperatorNotification{Mailer: m, To: operatorEmail},
		DonorReceipt{Mailer: m},
	}
	if n != nil {
		hooks = append(hooks, EventPublish{Notifier: n})
	}
	return hooks
}
