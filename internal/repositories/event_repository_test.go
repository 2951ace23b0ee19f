package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/domain/models"
)

var eventCols = []string{
	"e.id", "e.name", "e.description", "e.date", "e.location", "e.city_id", "e.image_url",
	"e.event_type", "e.article", "e.created_at", "e.updated_at",
	"c.id", "c.name", "c.state", "c.country",
}

func eventRow(rows *sqlmock.Rows, id int64, name string, date time.Time, article any) *sqlmock.Rows {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	return rows.AddRow(id, name, "Vaccination and adoption camp", date, "Lunsikui Ground", 1, nil,
		"CAMP", article, created, created,
		1, "Navsari", "Gujarat", "India")
}

func TestEventList_UpcomingFiltersByNowAndSortsByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(eventCols)
	eventRow(rows, 2, "Adoption Drive", now.AddDate(0, 0, 3), nil)
	eventRow(rows, 1, "Rabies Camp", now.AddDate(0, 1, 0), nil)
	mock.ExpectQuery(`WHERE e.date >= \? ORDER BY e.date ASC, e.id ASC`).
		WithArgs(now).
		WillReturnRows(rows)

	got, err := EventRepository{DB: db}.List(context.Background(), models.EventFilter{Upcoming: true, Now: now})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Adoption Drive" {
		t.Fatalf("unexpected events %+v", got)
	}
	if got[0].City == nil || got[0].City.Name != "Navsari" {
		t.Fatalf("city not populated: %+v", got[0].City)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEventList_CityAndUpcomingCombine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE e.city_id = \? AND e.date >= \? ORDER BY e.date ASC`).
		WithArgs(int64(1), now).
		WillReturnRows(sqlmock.NewRows(eventCols))

	got, err := EventRepository{DB: db}.List(context.Background(), models.EventFilter{CityID: 1, Upcoming: true, Now: now})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEventUpdate_ArticleOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	date := time.Date(2025, 6, 4, 4, 30, 0, 0, time.UTC)
	article := "<p>42 dogs vaccinated.</p>"
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).
		WillReturnRows(eventRow(sqlmock.NewRows(eventCols), 4, "Rabies Camp", date, nil))
	mock.ExpectExec(`UPDATE events SET article = \? WHERE id = \?`).
		WithArgs(article, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).
		WillReturnRows(eventRow(sqlmock.NewRows(eventCols), 4, "Rabies Camp", date, article))

	got, err := EventRepository{DB: db}.Update(context.Background(), 4, models.EventPatch{Article: &article})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Article == nil || *got.Article != article {
		t.Fatalf("expected article to be stored, got %v", got.Article)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEventUpdate_NameAndDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	old := time.Date(2025, 6, 4, 4, 30, 0, 0, time.UTC)
	moved := old.AddDate(0, 0, 7)
	name := "Monsoon Rabies Camp"
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).
		WillReturnRows(eventRow(sqlmock.NewRows(eventCols), 4, "Rabies Camp", old, nil))
	mock.ExpectExec(`UPDATE events SET name = \?, date = \? WHERE id = \?`).
		WithArgs(name, moved, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).
		WillReturnRows(eventRow(sqlmock.NewRows(eventCols), 4, name, moved, nil))

	got, err := EventRepository{DB: db}.Update(context.Background(), 4, models.EventPatch{Name: &name, Date: &moved})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != name || !got.Date.Equal(moved) {
		t.Fatalf("unexpected event %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEventUpdate_MissingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(9)).WillReturnRows(sqlmock.NewRows(eventCols))

	article := "x"
	_, err = EventRepository{DB: db}.Update(context.Background(), 9, models.EventPatch{Article: &article})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEventDelete_MissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \?`).WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (EventRepository{DB: db}).Delete(context.Background(), 9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEventDelete_Removes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \?`).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := (EventRepository{DB: db}).Delete(context.Background(), 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
