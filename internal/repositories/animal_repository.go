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

type AnimalRepository struct {
	DB *sql.DB
}

func (r AnimalRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const animalSelect = `
	SELECT a.id, a.name, a.type, a.age, a.story, a.is_available, a.image_urls,
	       a.shelter_id, a.created_at, a.updated_at,
	       s.id, s.name, s.address, s.registration_no, s.city_id,
	       c.id, c.name, c.state, c.country
	FROM animals a
	JOIN shelters s ON s.id = a.shelter_id
	JOIN cities c ON c.id = s.city_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (models.Animal, error) {
	var (
		a      models.Animal
		s      models.Shelter
		c      models.City
		age    sql.NullInt64
		images sql.NullString
		regNo  sql.NullString
	)
	if err := row.Scan(
		&a.ID, &a.Name, &a.Type, &age, &a.Story, &a.IsAvailable, &images,
		&a.ShelterID, &a.CreatedAt, &a.UpdatedAt,
		&s.ID, &s.Name, &s.Address, &regNo, &s.CityID,
		&c.ID, &c.Name, &c.State, &c.Country,
	); err != nil {
		return models.Animal{}, err
	}
	a.Age = intdb.IntPtr(age)
	a.ImageURL = intdb.DecodeList(images)
	s.RegistrationNo = intdb.StringPtr(regNo)
	s.City = &c
	a.Shelter = &s
	return a, nil
}

// List returns animals newest first, narrowed by the optional filter fields.
func (r AnimalRepository) List(ctx context.Context, f models.AnimalFilter) ([]models.Animal, error) {
	var (
		where []string
		args  []any
	)
	if f.CityID > 0 {
		where = append(where, "s.city_id = ?")
		args = append(args, f.CityID)
	}
	if f.Type != "" {
		where = append(where, "a.type = ?")
		args = append(args, f.Type)
	}
	if f.IsAvailable != nil {
		where = append(where, "a.is_available = ?")
		args = append(args, *f.IsAvailable)
	}

	q := animalSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY a.created_at DESC, a.id DESC"

	rows, err := r.db().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AnimalRepository) GetByID(ctx context.Context, id int64) (models.Animal, error) {
	a, err := scanAnimal(r.db().QueryRowContext(ctx, animalSelect+" WHERE a.id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Animal{}, domain.NotFoundError{Resource: "animal"}
	}
	return a, err
}

func (r AnimalRepository) Create(ctx context.Context, a models.Animal) (models.Animal, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO animals (name, type, age, story, is_available, image_urls, shelter_id)
		VALUES (?,?,?,?,?,?,?)`,
		a.Name, a.Type, intdb.NullInt(a.Age), a.Story, a.IsAvailable, intdb.EncodeList(a.ImageURL), a.ShelterID)
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return models.Animal{}, domain.ValidationError{Field: "shelterId", Msg: "shelter does not exist", Err: err}
		}
		return models.Animal{}, fmt.Errorf("insert animal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Animal{}, err
	}
	return r.GetByID(ctx, id)
}

// Update applies the non-nil fields of p and returns the stored row.
func (r AnimalRepository) Update(ctx context.Context, id int64, p models.AnimalPatch) (models.Animal, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.Animal{}, err
	}

	var (
		sets []string
		args []any
	)
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Age != nil {
		sets = append(sets, "age = ?")
		args = append(args, *p.Age)
	}
	if p.Story != nil {
		sets = append(sets, "story = ?")
		args = append(args, *p.Story)
	}
	if p.IsAvailable != nil {
		sets = append(sets, "is_available = ?")
		args = append(args, *p.IsAvailable)
	}
	if p.ImageURL != nil {
		sets = append(sets, "image_urls = ?")
		args = append(args, intdb.EncodeList(*p.ImageURL))
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := r.db().ExecContext(ctx, "UPDATE animals SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
			return models.Animal{}, fmt.Errorf("update animal: %w", err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r AnimalRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "animal"}
	}
	return nil
}

// CountAvailable feeds the public statistics.
func (r AnimalRepository) CountAvailable(ctx context.Context) (int, error) {
	var n int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM animals WHERE is_available = 1`).Scan(&n)
	return n, err
}
