// Package booking holds the pure query and aggregation core shared by
// the booking list, sales list and dashboard surfaces. Every function
// here is side-effect free and total: bad input resolves to a
// placeholder value, never an error or panic, so list rendering can
// always proceed.
package booking

import (
	"passgate-backend/internal/domain/models"
)

// UnknownPassTypeName marks a pass type reference that could not be
// resolved against the lookup table.
const UnknownPassTypeName = "Unknown"

func unknownPassType() *models.PassType {
	return &models.PassType{Name: UnknownPassTypeName, Price: 0}
}

// Normalize resolves every pass type reference on b against lookup
// (pass type id -> pass type). Refs that already carry a named object
// pass through untouched, so applying Normalize twice yields the same
// record. A lookup miss resolves to the Unknown placeholder rather
// than failing; a booking that arrives with no refs at all gets a
// single Unknown ref so downstream code never sees an empty list.
func Normalize(b models.Booking, lookup map[string]models.PassType) models.Booking {
	refs := make([]models.PassTypeRef, 0, len(b.PassTypes))
	for _, ref := range b.PassTypes {
		refs = append(refs, resolveRef(ref, lookup))
	}
	if len(refs) == 0 {
		refs = append(refs, models.PassTypeRef{Resolved: unknownPassType()})
	}
	b.PassTypes = refs
	return b
}

// NormalizeAll maps Normalize over a list, preserving order.
func NormalizeAll(list []models.Booking, lookup map[string]models.PassType) []models.Booking {
	out := make([]models.Booking, 0, len(list))
	for _, b := range list {
		out = append(out, Normalize(b, lookup))
	}
	return out
}

// LookupTable indexes pass types by id for Normalize.
func LookupTable(types []models.PassType) map[string]models.PassType {
	table := make(map[string]models.PassType, len(types))
	for _, pt := range types {
		table[pt.ID] = pt
	}
	return table
}

func resolveRef(ref models.PassTypeRef, lookup map[string]models.PassType) models.PassTypeRef {
	if ref.IsResolved() {
		return ref
	}
	if pt, ok := lookup[ref.ID]; ok {
		resolved := pt
		return models.PassTypeRef{ID: ref.ID, Resolved: &resolved}
	}
	return models.PassTypeRef{ID: ref.ID, Resolved: unknownPassType()}
}

// ResolvedAmount is the booking's billable amount: the stored total
// when present, otherwise the sum of its resolved pass type prices.
func ResolvedAmount(b models.Booking) int64 {
	if b.TotalAmount > 0 {
		return b.TotalAmount
	}
	var sum int64
	for _, ref := range b.PassTypes {
		sum += ref.Price()
	}
	return sum
}
