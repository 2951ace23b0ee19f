package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

type CoreMemberRepository struct {
	DB *sql.DB
}

func (r CoreMemberRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const memberSelect = `
	SELECT id, first_name, last_name, role, bio, image_url, email, phone,
	       is_active, display_order, created_at, updated_at
	FROM core_members`

func scanMember(row rowScanner) (models.CoreMember, error) {
	var (
		m                        models.CoreMember
		bio, image, email, phone sql.NullString
	)
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Role, &bio, &image, &email, &phone,
		&m.IsActive, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return models.CoreMember{}, err
	}
	m.Bio = intdb.StringPtr(bio)
	m.ImageURL = intdb.StringPtr(image)
	m.Email = intdb.StringPtr(email)
	m.Phone = intdb.StringPtr(phone)
	return m, nil
}

// ListActive is the public team listing ordered for display.
func (r CoreMemberRepository) ListActive(ctx context.Context) ([]models.CoreMember, error) {
	rows, err := r.db().QueryContext(ctx, memberSelect+" WHERE is_active = 1 ORDER BY display_order ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CoreMember{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r CoreMemberRepository) GetByID(ctx context.Context, id int64) (models.CoreMember, error) {
	m, err := scanMember(r.db().QueryRowContext(ctx, memberSelect+" WHERE id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CoreMember{}, domain.NotFoundError{Resource: "core member"}
	}
	return m, err
}

// email is the only unique column on core_members.
func errEmailTaken(err error) error {
	return domain.ConflictError{Resource: "core member", Msg: "email already in use", Err: err}
}

func (r CoreMemberRepository) Create(ctx context.Context, m models.CoreMember) (models.CoreMember, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO core_members (first_name, last_name, role, bio, image_url, email, phone, is_active, display_order)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		m.FirstName, m.LastName, m.Role,
		intdb.NullString(m.Bio), intdb.NullString(m.ImageURL), intdb.NullString(m.Email), intdb.NullString(m.Phone),
		m.IsActive, m.DisplayOrder)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return models.CoreMember{}, errEmailTaken(err)
		}
		return models.CoreMember{}, fmt.Errorf("insert core member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.CoreMember{}, err
	}
	return r.GetByID(ctx, id)
}

func (r CoreMemberRepository) Update(ctx context.Context, id int64, p models.CoreMemberPatch) (models.CoreMember, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.CoreMember{}, err
	}

	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.FirstName != nil {
		add("first_name", *p.FirstName)
	}
	if p.LastName != nil {
		add("last_name", *p.LastName)
	}
	if p.Role != nil {
		add("role", *p.Role)
	}
	if p.Bio != nil {
		add("bio", intdb.NullString(p.Bio))
	}
	if p.ImageURL != nil {
		add("image_url", intdb.NullString(p.ImageURL))
	}
	if p.Email != nil {
		add("email", intdb.NullString(p.Email))
	}
	if p.Phone != nil {
		add("phone", intdb.NullString(p.Phone))
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	if p.DisplayOrder != nil {
		add("display_order", *p.DisplayOrder)
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := r.db().ExecContext(ctx, "UPDATE core_members SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
			if intdb.IsDuplicateKey(err) {
				return models.CoreMember{}, errEmailTaken(err)
			}
			return models.CoreMember{}, fmt.Errorf("update core member: %w", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r CoreMemberRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM core_members WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete core member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "core member"}
	}
	return nil
}
