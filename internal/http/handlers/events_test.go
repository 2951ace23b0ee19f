package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

var eventCols = []string{
	"e.id", "e.name", "e.description", "e.date", "e.location", "e.city_id", "e.image_url",
	"e.event_type", "e.article", "e.created_at", "e.updated_at",
	"c.id", "c.name", "c.state", "c.country",
}

func eventRows(name, location string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(eventCols).AddRow(
		4, name, "Free vaccination", now, location, 1, nil,
		"CAMP", nil, now, now,
		1, "Navsari", "Gujarat", "India",
	)
}

func TestUpdateEvent_StoresNormalizedFields(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).WillReturnRows(eventRows("Rabies Camp", "Lunsikui"))
	mock.ExpectExec(`UPDATE events SET name = \?, description = \?, location = \? WHERE id = \?`).
		WithArgs("Monsoon Rabies Camp", "Free vaccination for strays", "Lunsikui Ground", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WHERE e.id = \?`).WithArgs(int64(4)).WillReturnRows(eventRows("Monsoon Rabies Camp", "Lunsikui Ground"))

	r := gin.New()
	r.PUT("/api/events/:id", UpdateEvent)
	w := doJSON(r, http.MethodPut, "/api/events/4", gin.H{
		"name":        " Monsoon  Rabies Camp ",
		"description": "  Free vaccination for strays\n",
		"location":    "Lunsikui   Ground",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateEvent_BlankLocationIs400(t *testing.T) {
	withMockDB(t)
	r := gin.New()
	r.PUT("/api/events/:id", UpdateEvent)
	w := doJSON(r, http.MethodPut, "/api/events/4", gin.H{"location": "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
