package booking

import (
	"reflect"
	"testing"

	"passgate-backend/internal/domain/models"
)

func TestSummarizeEmptyListIsAllZero(t *testing.T) {
	s := Summarize(nil)

	if s.TotalPasses != 0 || s.TotalRevenue != 0 || s.CheckedIn != 0 || s.NotCheckedIn != 0 {
		t.Fatalf("empty summary has nonzero totals: %+v", s)
	}
	for _, name := range []string{"Teens", "Couple", "Family"} {
		if v, ok := s.ByPassType[name]; !ok || v != 0 {
			t.Fatalf("built-in type %s missing or nonzero: %v", name, s.ByPassType)
		}
	}
}

func TestSummarizeSampleList(t *testing.T) {
	s := Summarize(sampleBookings())

	if s.TotalPasses != 2 {
		t.Fatalf("total passes = %d, want 2", s.TotalPasses)
	}
	if s.TotalRevenue != 2300 {
		t.Fatalf("total revenue = %d, want 2300", s.TotalRevenue)
	}
	if s.CheckedIn != 1 || s.NotCheckedIn != 1 {
		t.Fatalf("check-in split = %d/%d, want 1/1", s.CheckedIn, s.NotCheckedIn)
	}
	if s.ByPassType["Couple"] != 1 || s.ByPassType["Family"] != 1 || s.ByPassType["Teens"] != 0 {
		t.Fatalf("per-type counts wrong: %v", s.ByPassType)
	}
}

func TestSummarizeOrderInvariant(t *testing.T) {
	list := sampleBookings()
	list = append(list, models.Booking{
		ID:        "RPX-100003",
		BuyerName: "Meera",
		PassTypes: []models.PassTypeRef{{Resolved: &models.PassType{Name: "Teens", Price: 500}}},
		CheckedIn: true,
	})

	forward := Summarize(list)

	reversed := make([]models.Booking, len(list))
	for i, b := range list {
		reversed[len(list)-1-i] = b
	}
	backward := Summarize(reversed)

	if !reflect.DeepEqual(forward, backward) {
		t.Fatalf("summary depends on input order:\n%+v\n%+v", forward, backward)
	}
}

func TestSummarizeDerivesRevenueFromPassTypePrice(t *testing.T) {
	// no stored amount: the resolved pass type price stands in
	list := []models.Booking{{
		PassTypes: []models.PassTypeRef{{Resolved: &models.PassType{Name: "Teens", Price: 500}}},
	}}
	if s := Summarize(list); s.TotalRevenue != 500 {
		t.Fatalf("derived revenue = %d, want 500", s.TotalRevenue)
	}
}
