package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "rescuerehab/internal/config"
	intdb "rescuerehab/internal/db"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

type EventRepository struct {
	DB *sql.DB
}

func (r EventRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const eventSelect = `
	SELECT e.id, e.name, e.description, e.date, e.location, e.city_id, e.image_url,
	       e.event_type, e.article, e.created_at, e.updated_at,
	       c.id, c.name, c.state, c.country
	FROM events e
	JOIN cities c ON c.id = e.city_id`

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		e       models.Event
		c       models.City
		image   sql.NullString
		article sql.NullString
	)
	if err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.CityID, &image,
		&e.EventType, &article, &e.CreatedAt, &e.UpdatedAt,
		&c.ID, &c.Name, &c.State, &c.Country,
	); err != nil {
		return models.Event{}, err
	}
	e.ImageURL = intdb.StringPtr(image)
	e.Article = intdb.StringPtr(article)
	e.City = &c
	return e, nil
}

// List returns events by date ascending. Upcoming keeps only events on or after f.Now.
func (r EventRepository) List(ctx context.Context, f models.EventFilter) ([]models.Event, error) {
	var (
		where []string
		args  []any
	)
	if f.CityID > 0 {
		where = append(where, "e.city_id = ?")
		args = append(args, f.CityID)
	}
	if f.Upcoming {
		where = append(where, "e.date >= ?")
		args = append(args, f.Now)
	}

	q := eventSelect
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY e.date ASC, e.id ASC"

	rows, err := r.db().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EventRepository) GetByID(ctx context.Context, id int64) (models.Event, error) {
	e, err := scanEvent(r.db().QueryRowContext(ctx, eventSelect+" WHERE e.id = ? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, domain.NotFoundError{Resource: "event"}
	}
	return e, err
}

func (r EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db().QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (r EventRepository) Create(ctx context.Context, e models.Event) (models.Event, error) {
	if e.EventType == "" {
		e.EventType = models.DefaultEventType
	}
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO events (name, description, date, location, city_id, image_url, event_type, article)
		VALUES (?,?,?,?,?,?,?,?)`,
		e.Name, e.Description, e.Date, e.Location, e.CityID, intdb.NullString(e.ImageURL), e.EventType, intdb.NullString(e.Article))
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return models.Event{}, domain.ValidationError{Field: "cityId", Msg: "city does not exist", Err: err}
		}
		return models.Event{}, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Event{}, err
	}
	return r.GetByID(ctx, id)
}

func (r EventRepository) Update(ctx context.Context, id int64, p models.EventPatch) (models.Event, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.Event{}, err
	}

	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Date != nil {
		add("date", *p.Date)
	}
	if p.Location != nil {
		add("location", *p.Location)
	}
	if p.ImageURL != nil {
		add("image_url", intdb.NullString(p.ImageURL))
	}
	if p.EventType != nil {
		add("event_type", *p.EventType)
	}
	if p.Article != nil {
		add("article", intdb.NullString(p.Article))
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := r.db().ExecContext(ctx, "UPDATE events SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
			return models.Event{}, fmt.Errorf("update event: %w", err)
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes the event; its gallery goes with it through ON DELETE CASCADE.
func (r EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "event"}
	}
	return nil
}

func (r EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	var n int
	err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE date >= ?`, now).Scan(&n)
	return n, err
}
