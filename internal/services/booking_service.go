package services

import (
	"database/sql"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"passgate-backend/internal/booking"
	intconfig "passgate-backend/internal/config"
	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/repositories"
	"passgate-backend/internal/utils"
)

type BookingService struct {
	BookingRepo  repositories.BookingRepository
	PassTypeRepo repositories.PassTypeRepository
	DB           *sql.DB
	RequestID    string
	EventTag     string

	// test hooks, nil in production
	Now          func() time.Time
	FetchBooking func(id string) (models.Booking, error)
	FetchTypes   func() ([]models.PassType, error)
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) passTypes() repositories.PassTypeRepository {
	if s.PassTypeRepo.DB != nil {
		return s.PassTypeRepo
	}
	return repositories.PassTypeRepository{DB: s.db()}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) eventTag() string {
	if s.EventTag != "" {
		return s.EventTag
	}
	return "RPX"
}

func (s BookingService) lookup() (map[string]models.PassType, error) {
	types, err := s.listTypes()
	if err != nil {
		return nil, err
	}
	return booking.LookupTable(types), nil
}

func (s BookingService) listTypes() ([]models.PassType, error) {
	if s.FetchTypes != nil {
		return s.FetchTypes()
	}
	return s.passTypes().List(false)
}

func (s BookingService) fetch(id string) (models.Booking, error) {
	if s.FetchBooking != nil {
		return s.FetchBooking(id)
	}
	return s.bookings().GetByID(id)
}

// List returns normalized bookings matching f, newest first.
func (s BookingService) List(f booking.FilterSpec) ([]models.Booking, error) {
	raw, err := s.bookings().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	lookup, err := s.lookup()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return booking.Apply(booking.NormalizeAll(raw, lookup), f), nil
}

// Get returns one normalized booking.
func (s BookingService) Get(id string) (models.Booking, error) {
	b, err := s.fetch(id)
	if err != nil {
		return models.Booking{}, err
	}
	lookup, err := s.lookup()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking.Normalize(b, lookup), nil
}

// CreateBookingInput is the sales-flow payload.
type CreateBookingInput struct {
	ID            string              `json:"id"`
	BuyerName     string              `json:"buyer_name"`
	BuyerPhone    string              `json:"buyer_phone"`
	PassTypeIDs   []string            `json:"pass_type_ids"`
	TotalPeople   int                 `json:"total_people"`
	TotalAmount   int64               `json:"total_amount"`
	PaymentStatus string              `json:"payment_status"`
	PaymentMode   string              `json:"payment_mode"`
	Notes         string              `json:"notes"`
	PaymentNotes  string              `json:"payment_notes"`
	PassHolders   []models.PassHolder `json:"pass_holders"`
}

// Create validates and stores a sale. The server derives the amount
// from pass type prices when the counter leaves it blank, and assigns
// a display pass id when the client did not send one.
func (s BookingService) Create(in CreateBookingInput) (models.Booking, error) {
	name := utils.NormalizeSpace(in.BuyerName)
	if name == "" {
		return models.Booking{}, domain.ValidationError{Field: "buyer_name", Msg: "buyer name is required"}
	}
	if len(in.PassTypeIDs) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "pass_type_ids", Msg: "at least one pass type is required"}
	}
	if in.TotalPeople < 1 {
		return models.Booking{}, domain.ValidationError{Field: "total_people", Msg: "must be at least 1"}
	}
	if len(in.PassHolders) > in.TotalPeople {
		return models.Booking{}, domain.ValidationError{Field: "pass_holders", Msg: "more holders than total people"}
	}

	status := in.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}
	if !validPaymentStatus(status) {
		return models.Booking{}, domain.ValidationError{Field: "payment_status", Msg: fmt.Sprintf("unknown status %q", status)}
	}
	if in.PaymentMode != "" && !validPaymentMode(in.PaymentMode) {
		return models.Booking{}, domain.ValidationError{Field: "payment_mode", Msg: fmt.Sprintf("unknown mode %q", in.PaymentMode)}
	}

	lookup, err := s.lookup()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	var (
		refs      []models.PassTypeRef
		priceSum  int64
		maxPeople int
	)
	for _, id := range in.PassTypeIDs {
		pt, ok := lookup[id]
		if !ok {
			return models.Booking{}, domain.ValidationError{Field: "pass_type_ids", Msg: fmt.Sprintf("unknown pass type %q", id)}
		}
		if !pt.IsActive {
			return models.Booking{}, domain.ValidationError{Field: "pass_type_ids", Msg: fmt.Sprintf("pass type %q is inactive", pt.Name)}
		}
		refs = append(refs, models.PassTypeRef{ID: id})
		priceSum += pt.Price
		maxPeople += pt.MaxPeople
	}
	if in.TotalPeople > maxPeople {
		return models.Booking{}, domain.ValidationError{
			Field: "total_people",
			Msg:   fmt.Sprintf("exceeds pass limit of %d", maxPeople),
		}
	}

	amount := in.TotalAmount
	if amount <= 0 {
		amount = priceSum
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		rng := rand.New(rand.NewSource(s.now().UnixNano()))
		id = booking.NewPassID(s.eventTag(), s.now(), rng)
	}

	b := models.Booking{
		ID:            id,
		BuyerName:     name,
		BuyerPhone:    utils.TrimOrEmpty(in.BuyerPhone),
		PassTypes:     refs,
		TotalPeople:   in.TotalPeople,
		TotalAmount:   amount,
		PaymentStatus: status,
		PaymentMode:   in.PaymentMode,
		ScanCode:      booking.NewScanCode(id),
		Notes:         utils.TrimOrEmpty(in.Notes),
		PaymentNotes:  utils.TrimOrEmpty(in.PaymentNotes),
		PassHolders:   in.PassHolders,
		CreatedAt:     s.now(),
	}

	if err := s.bookings().Insert(b); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%s amount=%d", b.ID, amount))
	return booking.Normalize(b, lookup), nil
}

// Update applies a PATCH-style edit. Edits are deliberately permissive
// about people_entered versus total_people so operators can repair
// bad gate data; only the enum fields are validated.
func (s BookingService) Update(id string, upd models.BookingUpdate) (models.Booking, error) {
	if _, err := s.fetch(id); err != nil {
		return models.Booking{}, err
	}
	if upd.PaymentStatus != nil && !validPaymentStatus(*upd.PaymentStatus) {
		return models.Booking{}, domain.ValidationError{Field: "payment_status", Msg: fmt.Sprintf("unknown status %q", *upd.PaymentStatus)}
	}
	if upd.PaymentMode != nil && *upd.PaymentMode != "" && !validPaymentMode(*upd.PaymentMode) {
		return models.Booking{}, domain.ValidationError{Field: "payment_mode", Msg: fmt.Sprintf("unknown mode %q", *upd.PaymentMode)}
	}
	if upd.PeopleEntered != nil && *upd.PeopleEntered < 0 {
		return models.Booking{}, domain.ValidationError{Field: "people_entered", Msg: "cannot be negative"}
	}

	if err := s.bookings().Update(id, upd); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "update", "id="+id)
	return s.Get(id)
}

func (s BookingService) Delete(id string) error {
	if err := s.bookings().Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+id)
	return nil
}

// CheckIn admits people at the gate. Unlike edits, a gate event must
// not push people_entered past total_people, so overshoot is rejected.
func (s BookingService) CheckIn(id string, people int) (models.Booking, error) {
	if people < 1 {
		return models.Booking{}, domain.ValidationError{Field: "people", Msg: "must admit at least 1 person"}
	}
	b, err := s.fetch(id)
	if err != nil {
		return models.Booking{}, err
	}
	remaining := b.TotalPeople - b.PeopleEntered
	if people > remaining {
		return models.Booking{}, domain.ValidationError{
			Field: "people",
			Msg:   fmt.Sprintf("only %d entries remaining", remaining),
		}
	}
	if err := s.bookings().AddEntries(id, people); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "booking", "checkin", fmt.Sprintf("id=%s people=%d", id, people))
	return s.Get(id)
}

func validPaymentStatus(s string) bool {
	switch s {
	case models.PaymentPaid, models.PaymentPending, models.PaymentRefunded:
		return true
	}
	return false
}

func validPaymentMode(s string) bool {
	switch s {
	case models.ModeCash, models.ModeUPI, models.ModeCard, models.ModeOnline:
		return true
	}
	return false
}
