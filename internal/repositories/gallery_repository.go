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

// GalleryRepository scopes every item operation to its parent event.
type GalleryRepository struct {
	DB *sql.DB
}

func (r GalleryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const gallerySelect = `
	SELECT id, event_id, media_type, url, caption, alt_text, is_featured, sort_order, created_at
	FROM event_gallery`

func scanGallery(row rowScanner) (models.EventGallery, error) {
	var (
		g       models.EventGallery
		caption sql.NullString
		alt     sql.NullString
	)
	if err := row.Scan(&g.ID, &g.EventID, &g.MediaType, &g.URL, &caption, &alt, &g.IsFeatured, &g.Order, &g.CreatedAt); err != nil {
		return models.EventGallery{}, err
	}
	g.Caption = intdb.StringPtr(caption)
	g.AltText = intdb.StringPtr(alt)
	return g, nil
}

func (r GalleryRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.EventGallery, error) {
	rows, err := r.db().QueryContext(ctx, gallerySelect+" WHERE event_id = ? ORDER BY sort_order ASC, id ASC", eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EventGallery{}
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r GalleryRepository) Get(ctx context.Context, eventID, id int64) (models.EventGallery, error) {
	g, err := scanGallery(r.db().QueryRowContext(ctx, gallerySelect+" WHERE id = ? AND event_id = ? LIMIT 1", id, eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.EventGallery{}, domain.NotFoundError{Resource: "gallery item"}
	}
	return g, err
}

func (r GalleryRepository) Create(ctx context.Context, g models.EventGallery) (models.EventGallery, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO event_gallery (event_id, media_type, url, caption, alt_text, is_featured, sort_order)
		VALUES (?,?,?,?,?,?,?)`,
		g.EventID, g.MediaType, g.URL, intdb.NullString(g.Caption), intdb.NullString(g.AltText), g.IsFeatured, g.Order)
	if err != nil {
		if intdb.IsForeignKeyViolation(err) {
			return models.EventGallery{}, domain.NotFoundError{Resource: "event", Err: err}
		}
		return models.EventGallery{}, fmt.Errorf("insert gallery item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.EventGallery{}, err
	}
	return r.Get(ctx, g.EventID, id)
}

// GalleryPatch carries optional fields; nil leaves the column unchanged.
type GalleryPatch struct {
	MediaType  *string `json:"mediaType"`
	URL        *string `json:"url"`
	Caption    *string `json:"caption"`
	AltText    *string `json:"altText"`
	IsFeatured *bool   `json:"isFeatured"`
	Order      *int    `json:"order"`
}

func (r GalleryRepository) Update(ctx context.Context, eventID, id int64, p GalleryPatch) (models.EventGallery, error) {
	if _, err := r.Get(ctx, eventID, id); err != nil {
		return models.EventGallery{}, err
	}

	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if p.MediaType != nil {
		add("media_type", *p.MediaType)
	}
	if p.URL != nil {
		add("url", *p.URL)
	}
	if p.Caption != nil {
		add("caption", intdb.NullString(p.Caption))
	}
	if p.AltText != nil {
		add("alt_text", intdb.NullString(p.AltText))
	}
	if p.IsFeatured != nil {
		add("is_featured", *p.IsFeatured)
	}
	if p.Order != nil {
		add("sort_order", *p.Order)
	}
	if len(sets) > 0 {
		args = append(args, id, eventID)
		q := "UPDATE event_gallery SET " + strings.Join(sets, ", ") + " WHERE id = ? AND event_id = ?"
		if _, err := r.db().ExecContext(ctx, q, args...); err != nil {
			return models.EventGallery{}, fmt.Errorf("update gallery item: %w", err)
		}
	}
	return r.Get(ctx, eventID, id)
}

func (r GalleryRepository) Delete(ctx context.Context, eventID, id int64) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM event_gallery WHERE id = ? AND event_id = ?`, id, eventID)
	if err != nil {
		return fmt.Errorf("delete gallery item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "gallery item"}
	}
	return nil
}
