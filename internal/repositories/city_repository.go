package repositories

import (
	"context"
	"database/sql"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain/models"
)

// CityRepository reads cities, their contact info and shelters. These rows
// are maintained by the seed and the ops CLI only.
type CityRepository struct {
	DB *sql.DB
}

func (r CityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CityRepository) List(ctx context.Context) ([]models.City, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT c.id, c.name, c.state, c.country,
		       ci.id, ci.phone_numbers, ci.email, ci.address
		FROM cities c
		LEFT JOIN contact_info ci ON ci.city_id = c.id
		ORDER BY c.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var (
			c       models.City
			infoID  sql.NullInt64
			phones  sql.NullString
			email   sql.NullString
			address sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.Country, &infoID, &phones, &email, &address); err != nil {
			return nil, err
		}
		if infoID.Valid {
			c.ContactInfo = &models.ContactInfo{
				ID:           infoID.Int64,
				CityID:       c.ID,
				PhoneNumbers: intdb.DecodeList(phones),
				Email:        email.String,
				Address:      address.String,
			}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&n)
	return n, err
}

func (r CityRepository) ListShelters(ctx context.Context) ([]models.Shelter, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT s.id, s.name, s.address, s.registration_no, s.city_id,
		       c.id, c.name, c.state, c.country
		FROM shelters s
		JOIN cities c ON c.id = s.city_id
		ORDER BY s.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Shelter{}
	for rows.Next() {
		var (
			s     models.Shelter
			c     models.City
			regNo sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &regNo, &s.CityID, &c.ID, &c.Name, &c.State, &c.Country); err != nil {
			return nil, err
		}
		s.RegistrationNo = intdb.StringPtr(regNo)
		s.City = &c
		out = append(out, s)
	}
	return out, rows.Err()
}
