package models

import (
	"encoding/json"
	"strings"
)

// PassType is a purchasable admission category.
type PassType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	MaxPeople   int    `json:"max_people"`
	IsActive    bool   `json:"is_active"`
	Description string `json:"description,omitempty"`
}

// PassTypeUpdate supports PATCH-style updates via key presence.
type PassTypeUpdate struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	MaxPeople   *int    `json:"max_people"`
	IsActive    *bool   `json:"is_active"`
	Description *string `json:"description"`
}

// PassTypeRef is a booking's reference to a pass type. The wire (and
// older stored rows) may carry either a bare id string or an embedded
// pass type object, so the reference stays a tagged pair until the
// normalizer resolves it. Downstream code must only see resolved refs.
type PassTypeRef struct {
	ID       string
	Resolved *PassType
}

// IsResolved reports whether the ref already carries a usable pass
// type (non-empty name). An embedded object without a name still
// needs a lookup.
func (r PassTypeRef) IsResolved() bool {
	return r.Resolved != nil && strings.TrimSpace(r.Resolved.Name) != ""
}

// Name returns the resolved name, or "" for an unresolved ref.
func (r PassTypeRef) Name() string {
	if r.Resolved == nil {
		return ""
	}
	return r.Resolved.Name
}

// Price returns the resolved price, or 0 for an unresolved ref.
func (r PassTypeRef) Price() int64 {
	if r.Resolved == nil {
		return 0
	}
	return r.Resolved.Price
}

func (r *PassTypeRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Resolved = nil
		return nil
	}
	var pt PassType
	if err := json.Unmarshal(b, &pt); err != nil {
		return err
	}
	r.ID = pt.ID
	r.Resolved = &pt
	return nil
}

func (r PassTypeRef) MarshalJSON() ([]byte, error) {
	if r.Resolved != nil {
		return json.Marshal(r.Resolved)
	}
	return json.Marshal(r.ID)
}
