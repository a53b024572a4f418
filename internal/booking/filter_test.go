package booking

import (
	"testing"

	"passgate-backend/internal/domain/models"
)

func sampleBookings() []models.Booking {
	couple := &models.PassType{ID: "pt-2", Name: "Couple", Price: 800}
	family := &models.PassType{ID: "pt-3", Name: "Family", Price: 1500}
	return []models.Booking{
		{
			ID:            "RPX-100001",
			BuyerName:     "Asha",
			BuyerPhone:    "9876543210",
			PassTypes:     []models.PassTypeRef{{ID: "pt-2", Resolved: couple}},
			TotalAmount:   800,
			PaymentStatus: models.PaymentPaid,
			CheckedIn:     false,
		},
		{
			ID:            "RPX-100002",
			BuyerName:     "Raj",
			BuyerPhone:    "9123456780",
			PassTypes:     []models.PassTypeRef{{ID: "pt-3", Resolved: family}},
			TotalAmount:   1500,
			PaymentStatus: models.PaymentPending,
			CheckedIn:     true,
		},
	}
}

func TestMatchesAllSentinelAlwaysTrue(t *testing.T) {
	f := FilterSpec{Search: "", PassType: FilterAll, PaymentStatus: FilterAll, CheckinStatus: FilterAll}
	for _, b := range sampleBookings() {
		if !Matches(b, f) {
			t.Fatalf("booking %s should match the all-sentinel filter", b.ID)
		}
	}
}

func TestMatchesSearchDimensions(t *testing.T) {
	bookings := sampleBookings()
	cases := []struct {
		name   string
		search string
		want   []string
	}{
		{"buyer name case-insensitive", "asha", []string{"RPX-100001"}},
		{"phone substring", "987", []string{"RPX-100001"}},
		{"booking id", "100002", []string{"RPX-100002"}},
		{"shared id prefix", "rpx", []string{"RPX-100001", "RPX-100002"}},
		{"no field contains it", "zzz", nil},
		{"whitespace only means no filter", "   ", []string{"RPX-100001", "RPX-100002"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(bookings, FilterSpec{Search: tc.search})
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tc.want))
			}
			for i, b := range got {
				if b.ID != tc.want[i] {
					t.Fatalf("result %d = %s, want %s", i, b.ID, tc.want[i])
				}
			}
		})
	}
}

func TestMatchesPassTypeExact(t *testing.T) {
	bookings := sampleBookings()

	got := Apply(bookings, FilterSpec{PassType: "Couple"})
	if len(got) != 1 || got[0].BuyerName != "Asha" {
		t.Fatalf("Couple filter should keep only Asha, got %+v", got)
	}

	// case-sensitive: lowercase selector matches nothing
	if got := Apply(bookings, FilterSpec{PassType: "couple"}); len(got) != 0 {
		t.Fatalf("lowercase selector should match nothing, got %d", len(got))
	}
}

func TestMatchesCheckinStatus(t *testing.T) {
	bookings := sampleBookings()

	if got := Apply(bookings, FilterSpec{CheckinStatus: CheckinCheckedIn}); len(got) != 1 || got[0].BuyerName != "Raj" {
		t.Fatalf("checked-in filter wrong: %+v", got)
	}
	if got := Apply(bookings, FilterSpec{CheckinStatus: CheckinPending}); len(got) != 1 || got[0].BuyerName != "Asha" {
		t.Fatalf("pending filter wrong: %+v", got)
	}
	// unknown selector value matches nothing instead of erroring
	if got := Apply(bookings, FilterSpec{CheckinStatus: "bogus"}); len(got) != 0 {
		t.Fatalf("bogus selector should match nothing, got %d", len(got))
	}
}

func TestMatchesDimensionsCombineWithAND(t *testing.T) {
	bookings := sampleBookings()

	f := FilterSpec{Search: "9", PaymentStatus: models.PaymentPaid, CheckinStatus: CheckinPending}
	got := Apply(bookings, f)
	if len(got) != 1 || got[0].BuyerName != "Asha" {
		t.Fatalf("combined filter wrong: %+v", got)
	}

	f.PaymentStatus = models.PaymentRefunded
	if got := Apply(bookings, f); len(got) != 0 {
		t.Fatalf("no booking is refunded, got %d", len(got))
	}
}

func TestMatchesBundledPassTypes(t *testing.T) {
	b := models.Booking{
		ID: "RPX-9",
		PassTypes: []models.PassTypeRef{
			{Resolved: &models.PassType{Name: "Couple", Price: 800}},
			{Resolved: &models.PassType{Name: "Teens", Price: 500}},
		},
	}
	if !Matches(b, FilterSpec{PassType: "Teens"}) {
		t.Fatalf("bundle should match on any bundled type")
	}
}
