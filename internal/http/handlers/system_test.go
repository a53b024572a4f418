package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "passgate-backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func dbCheckContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/db-check", nil)
	return c, w
}

func TestDBCheckReportsBookingCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery("information_schema\\.tables").
		WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	c, w := dbCheckContext(t)
	DBCheck(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "42") {
		t.Fatalf("count missing from body: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDBCheckRejectsMissingBookingsTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	defer func() { intconfig.DB = nil }()

	mock.ExpectQuery("information_schema\\.tables").
		WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	c, w := dbCheckContext(t)
	DBCheck(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "schema") {
		t.Fatalf("missing-table message absent: %s", w.Body.String())
	}
}
