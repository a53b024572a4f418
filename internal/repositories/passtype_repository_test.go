package repositories

import (
	"testing"

	"passgate-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPassTypeRepositoryListActiveOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM pass_types WHERE is_active=1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "max_people", "is_active", "description"}).
			AddRow("pt-1", "Teens", 500, 1, true, "").
			AddRow("pt-2", "Couple", 800, 2, true, "entry for two"))

	types, err := PassTypeRepository{DB: db}.List(true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(types) != 2 || types[1].Name != "Couple" || types[1].MaxPeople != 2 {
		t.Fatalf("types scanned wrong: %+v", types)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPassTypeRepositoryCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO pass_types").
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := PassTypeRepository{DB: db}.Create(models.PassType{
		Name: "Family", Price: 1500, MaxPeople: 5, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("repository should assign an id when none is given")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
