package booking

import (
	"strings"

	"passgate-backend/internal/domain/models"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// Check-in filter values.
const (
	CheckinCheckedIn = "checked-in"
	CheckinPending   = "pending"
)

// FilterSpec selects bookings for list display. A dimension set to
// "all" (or left empty) is skipped; active dimensions combine with
// logical AND.
type FilterSpec struct {
	Search        string `form:"search" json:"search"`
	PassType      string `form:"pass_type" json:"pass_type"`
	PaymentStatus string `form:"payment_status" json:"payment_status"`
	CheckinStatus string `form:"checkin_status" json:"checkin_status"`
}

// Matches reports whether b satisfies every active dimension of f.
// Unknown selector values match nothing rather than erroring, so a
// stale UI never breaks the list.
func Matches(b models.Booking, f FilterSpec) bool {
	if !matchesSearch(b, f.Search) {
		return false
	}
	if !dimensionOff(f.PassType) && !hasPassTypeName(b, f.PassType) {
		return false
	}
	if !dimensionOff(f.PaymentStatus) && b.PaymentStatus != f.PaymentStatus {
		return false
	}
	if !dimensionOff(f.CheckinStatus) {
		switch f.CheckinStatus {
		case CheckinCheckedIn:
			if !b.CheckedIn {
				return false
			}
		case CheckinPending:
			if b.CheckedIn {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Apply filters list with f, preserving input order.
func Apply(list []models.Booking, f FilterSpec) []models.Booking {
	out := make([]models.Booking, 0, len(list))
	for _, b := range list {
		if Matches(b, f) {
			out = append(out, b)
		}
	}
	return out
}

// matchesSearch does a case-insensitive substring test against buyer
// name, buyer phone and booking id (OR across the three). The phone is
// matched as stored; formatting characters are not stripped, matching
// how the admin screens have always behaved.
func matchesSearch(b models.Booking, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.BuyerName), needle) ||
		strings.Contains(strings.ToLower(b.BuyerPhone), needle) ||
		strings.Contains(strings.ToLower(b.ID), needle)
}

// hasPassTypeName matches the selector against any of the booking's
// resolved pass type names (exact, case-sensitive). Bundled bookings
// match on any bundled type.
func hasPassTypeName(b models.Booking, name string) bool {
	for _, ref := range b.PassTypes {
		if ref.Name() == name {
			return true
		}
	}
	return false
}

func dimensionOff(v string) bool {
	return v == "" || v == FilterAll
}
