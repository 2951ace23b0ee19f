package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

// IntakeRepository stores the public volunteer and contact forms.
type IntakeRepository struct {
	DB *sql.DB
}

func (r IntakeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r IntakeRepository) CreateVolunteer(ctx context.Context, v models.VolunteerApplication) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO volunteer_applications (first_name, last_name, email, phone, city, message)
		VALUES (?,?,?,?,?,?)`,
		v.FirstName, v.LastName, v.Email, intdb.NullString(v.Phone), v.City, intdb.NullString(v.Message))
	if err != nil {
		return 0, fmt.Errorf("insert volunteer: %w", err)
	}
	return res.LastInsertId()
}

func (r IntakeRepository) ListVolunteers(ctx context.Context) ([]models.VolunteerApplication, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, city, message, created_at
		FROM volunteer_applications
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VolunteerApplication{}
	for rows.Next() {
		var (
			v              models.VolunteerApplication
			phone, message sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Email, &phone, &v.City, &message, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Phone = intdb.StringPtr(phone)
		v.Message = intdb.StringPtr(message)
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r IntakeRepository) DeleteVolunteer(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM volunteer_applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete volunteer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "volunteer application"}
	}
	return nil
}

func (r IntakeRepository) CreateContact(ctx context.Context, c models.ContactSubmission) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO contact_submissions (name, email, phone, subject, message)
		VALUES (?,?,?,?,?)`,
		c.Name, c.Email, intdb.NullString(c.Phone), c.Subject, c.Message)
	if err != nil {
		return 0, fmt.Errorf("insert contact submission: %w", err)
	}
	return res.LastInsertId()
}

func (r IntakeRepository) ListContacts(ctx context.Context) ([]models.ContactSubmission, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, name, email, phone, subject, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ContactSubmission{}
	for rows.Next() {
		var (
			c     models.ContactSubmission
			phone sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Phone = intdb.StringPtr(phone)
		out = append(out, c)
	}
	return out, rows.Err()
}
