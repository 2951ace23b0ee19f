package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

// ErrDuplicatePayment is returned by Create when the payment id was already recorded.
var ErrDuplicatePayment = errors.New("payment already recorded")

type DonationRepository struct {
	DB *sql.DB
}

func (r DonationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const donationSelect = `
	SELECT id, amount, currency, donor_name, donor_email, donor_phone,
	       payment_id, order_id, status, purpose, created_at
	FROM donations`

func scanDonation(row rowScanner) (models.Donation, error) {
	var (
		d            models.Donation
		email, phone sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Amount, &d.Currency, &d.DonorName, &email, &phone,
		&d.PaymentID, &d.OrderID, &d.Status, &d.Purpose, &d.CreatedAt); err != nil {
		return models.Donation{}, err
	}
	d.DonorEmail = intdb.StringPtr(email)
	d.DonorPhone = intdb.StringPtr(phone)
	return d, nil
}

// Create inserts one donation and returns its id. created_at is written from
// d.CreatedAt so the caller holds the stored value; zero means now.
// A second insert for the same payment id fails with ErrDuplicatePayment.
func (r DonationRepository) Create(ctx context.Context, d models.Donation) (int64, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO donations (amount, currency, donor_name, donor_email, donor_phone, payment_id, order_id, status, purpose, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		d.Amount, d.Currency, d.DonorName, intdb.NullString(d.DonorEmail), intdb.NullString(d.DonorPhone),
		d.PaymentID, d.OrderID, d.Status, d.Purpose, d.CreatedAt)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicatePayment, d.PaymentID)
		}
		return 0, fmt.Errorf("insert donation: %w", err)
	}
	return res.LastInsertId()
}

func (r DonationRepository) GetByID(ctx context.Context, id int64) (models.Donation, error) {
	d, err := scanDonation(r.db().QueryRowContext(ctx, donationSelect+" WHERE id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Donation{}, domain.NotFoundError{Resource: "donation"}
	}
	return d, err
}

func (r DonationRepository) GetByPaymentID(ctx context.Context, paymentID string) (models.Donation, error) {
	d, err := scanDonation(r.db().QueryRowContext(ctx, donationSelect+" WHERE payment_id = ? LIMIT 1", paymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Donation{}, domain.NotFoundError{Resource: "donation"}
	}
	return d, err
}

// List returns one page of donations, newest first, with the page total filled in.
func (r DonationRepository) List(ctx context.Context, p domain.Pagination) ([]models.Donation, domain.Pagination, error) {
	if err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`).Scan(&p.Total); err != nil {
		return nil, p, err
	}
	rows, err := r.db().QueryContext(ctx, donationSelect+" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?", p.PageSize, p.Offset())
	if err != nil {
		return nil, p, err
	}
	defer rows.Close()

	out := []models.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, p, err
		}
		out = append(out, d)
	}
	return out, p, rows.Err()
}

func (r DonationRepository) Summary(ctx context.Context) (models.DonationSummary, error) {
	var s models.DonationSummary
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(amount),0) FROM donations`).Scan(&s.Count, &s.TotalAmount)
	return s, err
}
