package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	intconfig "rescuerehab/internal/config"
	"rescuerehab/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withMockDB points the shared pool at sqlmock for the duration of the test.
func withMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	prev := intconfig.DB
	intconfig.DB = db
	t.Cleanup(func() {
		intconfig.DB = prev
		db.Close()
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectations: %v", err)
		}
	})
	return mock
}

func doJSON(r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type stubOrders struct {
	got services.OrderRequest
	err error
}

func (s *stubOrders) CreateOrder(_ context.Context, req services.OrderRequest) (services.Order, error) {
	s.got = req
	if s.err != nil {
		return services.Order{}, s.err
	}
	return services.Order{ID: "order_test", Amount: req.AmountMinor, Currency: req.Currency, Receipt: req.Receipt}, nil
}

func fixedNow() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

