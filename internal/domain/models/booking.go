package models

import "time"

// Payment status values stored on bookings.
const (
	PaymentPaid     = "Paid"
	PaymentPending  = "Pending"
	PaymentRefunded = "Refunded"
)

// Payment modes accepted at the sales counter.
const (
	ModeCash   = "Cash"
	ModeUPI    = "UPI"
	ModeCard   = "Card"
	ModeOnline = "Online"
)

// PassHolder is one named person on a booking. Entries may be blank
// when the seller skips per-person details.
type PassHolder struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Booking is a single pass sale with its entry-tracking state.
// PassTypes holds at least one ref after normalization; bookings that
// bundle several pass types carry one ref per bundled type.
type Booking struct {
	ID            string        `json:"id"`
	BuyerName     string        `json:"buyer_name"`
	BuyerPhone    string        `json:"buyer_phone"`
	PassTypes     []PassTypeRef `json:"pass_types"`
	TotalPeople   int           `json:"total_people"`
	TotalAmount   int64         `json:"total_amount"`
	PaymentStatus string        `json:"payment_status"`
	PaymentMode   string        `json:"payment_mode"`
	CheckedIn     bool          `json:"checked_in"`
	PeopleEntered int           `json:"people_entered"`
	ScanCode      string        `json:"scan_code,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	PaymentNotes  string        `json:"payment_notes,omitempty"`
	PassHolders   []PassHolder  `json:"pass_holders,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BookingUpdate supports PATCH-style updates via key presence.
// people_entered and checked_in edits are accepted as sent so
// operators can correct bad gate data; nothing is clamped here.
type BookingUpdate struct {
	BuyerName     *string       `json:"buyer_name"`
	BuyerPhone    *string       `json:"buyer_phone"`
	TotalAmount   *int64        `json:"total_amount"`
	PaymentStatus *string       `json:"payment_status"`
	PaymentMode   *string       `json:"payment_mode"`
	PeopleEntered *int          `json:"people_entered"`
	CheckedIn     *bool         `json:"checked_in"`
	Notes         *string       `json:"notes"`
	PaymentNotes  *string       `json:"payment_notes"`
	PassHolders   *[]PassHolder `json:"pass_holders"`
}
