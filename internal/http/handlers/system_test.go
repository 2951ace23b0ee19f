package handlers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestStats_CountsAvailableAnimalsCitiesAndUpcomingEvents(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery(`FROM animals WHERE is_available = 1`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(12))
	mock.ExpectQuery(`FROM cities`).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))
	mock.ExpectQuery(`FROM events WHERE date >= \?`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	r := gin.New()
	r.GET("/api/stats", Stats)
	w := doJSON(r, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["totalAnimals"] != float64(12) || body["totalCities"] != float64(3) || body["upcomingEvents"] != float64(2) {
		t.Fatalf("unexpected stats %v", body)
	}
}

func TestCreateGalleryItem_RejectsUnknownMediaType(t *testing.T) {
	withMockDB(t)
	r := gin.New()
	r.POST("/api/events/:id/gallery", CreateGalleryItem)
	w := doJSON(r, http.MethodPost, "/api/events/1/gallery", gin.H{"mediaType": "audio", "url": "/x.mp3"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateGalleryItem_MissingEventIs404(t *testing.T) {
	mock := withMockDB(t)
	mock.ExpectQuery(`SELECT 1 FROM events WHERE id = \?`).WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"one"}))

	r := gin.New()
	r.POST("/api/events/:id/gallery", CreateGalleryItem)
	w := doJSON(r, http.MethodPost, "/api/events/9/gallery", gin.H{"mediaType": "image", "url": "/images/events/a.jpg"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateEvent_InvalidDate(t *testing.T) {
	withMockDB(t)
	r := gin.New()
	r.POST("/api/events", CreateEvent)
	w := doJSON(r, http.MethodPost, "/api/events", gin.H{
		"name": "Adoption Camp", "description": "Meet the dogs", "date": "soon",
		"location": "Navsari", "cityId": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
