package services

import (
	"strings"
	"testing"
	"time"

	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func fixedTypes() []models.PassType {
	return []models.PassType{
		{ID: "pt-1", Name: "Teens", Price: 500, MaxPeople: 1, IsActive: true},
		{ID: "pt-2", Name: "Couple", Price: 800, MaxPeople: 2, IsActive: true},
		{ID: "pt-3", Name: "Family", Price: 1500, MaxPeople: 5, IsActive: true},
		{ID: "pt-old", Name: "Retired", Price: 100, MaxPeople: 1, IsActive: false},
	}
}

func TestCheckInRejectsOvershoot(t *testing.T) {
	svc := BookingService{
		FetchBooking: func(id string) (models.Booking, error) {
			return models.Booking{ID: id, TotalPeople: 2, PeopleEntered: 1}, nil
		},
	}

	_, err := svc.CheckIn("RPX-1", 2)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "1 entries remaining") {
		t.Fatalf("error should name remaining capacity: %v", err)
	}
}

func TestCheckInRequiresAtLeastOnePerson(t *testing.T) {
	svc := BookingService{}
	if _, err := svc.CheckIn("RPX-1", 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheckInAdmitsWithinCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(2, "RPX-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entered := 0
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
		FetchBooking: func(id string) (models.Booking, error) {
			return models.Booking{
				ID:            id,
				TotalPeople:   3,
				PeopleEntered: entered,
				PassTypes:     []models.PassTypeRef{{ID: "pt-3"}},
			}, nil
		},
		FetchTypes: func() ([]models.PassType, error) { return fixedTypes(), nil },
	}

	b, err := svc.CheckIn("RPX-1", 2)
	if err != nil {
		t.Fatalf("check-in failed: %v", err)
	}
	if b.PassTypes[0].Name() != "Family" {
		t.Fatalf("returned booking should be normalized, got %+v", b.PassTypes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRejectsUnknownOrInactivePassType(t *testing.T) {
	svc := BookingService{
		FetchTypes: func() ([]models.PassType, error) { return fixedTypes(), nil },
	}

	_, err := svc.Create(CreateBookingInput{
		BuyerName:   "Asha",
		PassTypeIDs: []string{"pt-missing"},
		TotalPeople: 1,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("unknown pass type should fail validation, got %v", err)
	}

	_, err = svc.Create(CreateBookingInput{
		BuyerName:   "Asha",
		PassTypeIDs: []string{"pt-old"},
		TotalPeople: 1,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("inactive pass type should fail validation, got %v", err)
	}
}

func TestCreateRejectsTooManyPeople(t *testing.T) {
	svc := BookingService{
		FetchTypes: func() ([]models.PassType, error) { return fixedTypes(), nil },
	}

	_, err := svc.Create(CreateBookingInput{
		BuyerName:   "Asha",
		PassTypeIDs: []string{"pt-2"}, // Couple, max 2
		TotalPeople: 3,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDerivesAmountAndAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO booking_pass_types").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
		EventTag:    "RPX",
		Now:         func() time.Time { return time.UnixMilli(1761234567891) },
		FetchTypes:  func() ([]models.PassType, error) { return fixedTypes(), nil },
	}

	b, err := svc.Create(CreateBookingInput{
		BuyerName:   "  Asha  ",
		BuyerPhone:  "9876543210",
		PassTypeIDs: []string{"pt-2"},
		TotalPeople: 2,
		PaymentMode: models.ModeUPI,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if b.BuyerName != "Asha" {
		t.Fatalf("name not normalized: %q", b.BuyerName)
	}
	if b.TotalAmount != 800 {
		t.Fatalf("amount should derive from pass type price, got %d", b.TotalAmount)
	}
	if !strings.HasPrefix(b.ID, "RPX-") {
		t.Fatalf("server should assign a tagged pass id, got %q", b.ID)
	}
	if b.ScanCode != "PASSGATE:"+b.ID {
		t.Fatalf("scan code should wrap the pass id, got %q", b.ScanCode)
	}
	if b.PaymentStatus != models.PaymentPending {
		t.Fatalf("payment status should default to Pending, got %q", b.PaymentStatus)
	}
	if b.PassTypes[0].Name() != "Couple" {
		t.Fatalf("returned booking should be normalized, got %+v", b.PassTypes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAllowsOperatorCorrections(t *testing.T) {
	// an edit may set people_entered above total_people; that is an
	// operator correction path, not a gate event
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// updated_at column probe, then the update itself
	mock.ExpectQuery("information_schema\\.columns").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entered := 5
	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		DB:          db,
		FetchBooking: func(id string) (models.Booking, error) {
			return models.Booking{ID: id, TotalPeople: 2, PeopleEntered: entered, PassTypes: []models.PassTypeRef{{ID: "pt-2"}}}, nil
		},
		FetchTypes: func() ([]models.PassType, error) { return fixedTypes(), nil },
	}

	if _, err := svc.Update("RPX-1", models.BookingUpdate{PeopleEntered: &entered}); err != nil {
		t.Fatalf("permissive edit rejected: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
