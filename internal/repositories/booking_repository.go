package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "passgate-backend/internal/config"
	intdb "passgate-backend/internal/db"
	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id,
	       COALESCE(buyer_name,''),
	       COALESCE(buyer_phone,''),
	       COALESCE(total_people,1),
	       COALESCE(total_amount,0),
	       COALESCE(payment_status,''),
	       COALESCE(payment_mode,''),
	       COALESCE(checked_in,0),
	       COALESCE(people_entered,0),
	       COALESCE(scan_code,''),
	       COALESCE(notes,''),
	       COALESCE(payment_notes,''),
	       created_at`

func scanBooking(sc interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := sc.Scan(
		&b.ID,
		&b.BuyerName,
		&b.BuyerPhone,
		&b.TotalPeople,
		&b.TotalAmount,
		&b.PaymentStatus,
		&b.PaymentMode,
		&b.CheckedIn,
		&b.PeopleEntered,
		&b.ScanCode,
		&b.Notes,
		&b.PaymentNotes,
		&b.CreatedAt,
	)
	return b, err
}

// List returns all bookings, newest first, with pass type refs loaded
// as bare ids. Resolution happens once at the service boundary.
func (r BookingRepository) List() ([]models.Booking, error) {
	db := r.db()
	rows, err := db.Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs, err := r.loadAllPassTypeRefs()
	if err != nil {
		return nil, err
	}
	holders, err := r.loadAllHolders()
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PassTypes = refs[out[i].ID]
		out[i].PassHolders = holders[out[i].ID]
	}
	return out, nil
}

func (r BookingRepository) GetByID(id string) (models.Booking, error) {
	if strings.TrimSpace(id) == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "missing booking id"}
	}
	db := r.db()
	b, err := scanBooking(db.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}

	b.PassTypes, err = r.loadPassTypeRefs(id)
	if err != nil {
		return models.Booking{}, err
	}
	b.PassHolders, err = r.loadHolders(id)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// Insert stores a booking together with its pass type refs and
// holders in one transaction.
func (r BookingRepository) Insert(b models.Booking) error {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO bookings
			(id, buyer_name, buyer_phone, total_people, total_amount,
			 payment_status, payment_mode, checked_in, people_entered,
			 scan_code, notes, payment_notes, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.BuyerName, b.BuyerPhone, b.TotalPeople, b.TotalAmount,
		b.PaymentStatus, b.PaymentMode, b.CheckedIn, b.PeopleEntered,
		intdb.NullIfEmpty(b.ScanCode), intdb.NullIfEmpty(b.Notes), intdb.NullIfEmpty(b.PaymentNotes),
		b.CreatedAt,
	)
	if err != nil {
		return err
	}

	for i, ref := range b.PassTypes {
		if _, err := tx.Exec(`
			INSERT INTO booking_pass_types (booking_id, position, pass_type_id)
			VALUES (?,?,?)`, b.ID, i, ref.ID); err != nil {
			return err
		}
	}
	for i, h := range b.PassHolders {
		if _, err := tx.Exec(`
			INSERT INTO pass_holders (booking_id, position, name, phone)
			VALUES (?,?,?,?)`, b.ID, i, h.Name, h.Phone); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Update performs PATCH-style updates based on key presence. A
// PassHolders key replaces the holder rows wholesale.
func (r BookingRepository) Update(id string, upd models.BookingUpdate) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "missing booking id"}
	}
	db := r.db()
	sets := []string{}
	args := []any{}

	if upd.BuyerName != nil {
		sets = append(sets, "buyer_name=?")
		args = append(args, strings.TrimSpace(*upd.BuyerName))
	}
	if upd.BuyerPhone != nil {
		sets = append(sets, "buyer_phone=?")
		args = append(args, strings.TrimSpace(*upd.BuyerPhone))
	}
	if upd.TotalAmount != nil {
		sets = append(sets, "total_amount=?")
		args = append(args, *upd.TotalAmount)
	}
	if upd.PaymentStatus != nil {
		sets = append(sets, "payment_status=?")
		args = append(args, *upd.PaymentStatus)
	}
	if upd.PaymentMode != nil {
		sets = append(sets, "payment_mode=?")
		args = append(args, *upd.PaymentMode)
	}
	if upd.PeopleEntered != nil {
		sets = append(sets, "people_entered=?")
		args = append(args, *upd.PeopleEntered)
	}
	if upd.CheckedIn != nil {
		sets = append(sets, "checked_in=?")
		args = append(args, *upd.CheckedIn)
	}
	if upd.Notes != nil {
		sets = append(sets, "notes=?")
		args = append(args, intdb.NullIfEmpty(strings.TrimSpace(*upd.Notes)))
	}
	if upd.PaymentNotes != nil {
		sets = append(sets, "payment_notes=?")
		args = append(args, intdb.NullIfEmpty(strings.TrimSpace(*upd.PaymentNotes)))
	}

	if len(sets) > 0 {
		if intdb.HasColumn(db, "bookings", "updated_at") {
			sets = append(sets, "updated_at=NOW()")
		}
		args = append(args, id)
		if _, err := db.Exec(`UPDATE bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...); err != nil {
			return err
		}
	}

	if upd.PassHolders != nil {
		if _, err := db.Exec(`DELETE FROM pass_holders WHERE booking_id=?`, id); err != nil {
			return err
		}
		for i, h := range *upd.PassHolders {
			if _, err := db.Exec(`
				INSERT INTO pass_holders (booking_id, position, name, phone)
				VALUES (?,?,?,?)`, id, i, h.Name, h.Phone); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddEntries records a gate check-in: bumps people_entered and marks
// the booking checked in. Range validation lives in the service.
func (r BookingRepository) AddEntries(id string, people int) error {
	_, err := r.db().Exec(`
		UPDATE bookings
		SET people_entered = people_entered + ?, checked_in = 1
		WHERE id=?`, people, id)
	return err
}

// Delete removes a booking permanently, including its refs and holders.
func (r BookingRepository) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "missing booking id"}
	}
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM pass_holders WHERE booking_id=?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM booking_pass_types WHERE booking_id=?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return tx.Commit()
}

func (r BookingRepository) loadPassTypeRefs(bookingID string) ([]models.PassTypeRef, error) {
	rows, err := r.db().Query(`
		SELECT pass_type_id FROM booking_pass_types
		WHERE booking_id=? ORDER BY position ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []models.PassTypeRef{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		refs = append(refs, models.PassTypeRef{ID: id})
	}
	return refs, rows.Err()
}

func (r BookingRepository) loadAllPassTypeRefs() (map[string][]models.PassTypeRef, error) {
	rows, err := r.db().Query(`
		SELECT booking_id, pass_type_id FROM booking_pass_types
		ORDER BY booking_id, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]models.PassTypeRef{}
	for rows.Next() {
		var bookingID, passTypeID string
		if err := rows.Scan(&bookingID, &passTypeID); err != nil {
			return nil, err
		}
		out[bookingID] = append(out[bookingID], models.PassTypeRef{ID: passTypeID})
	}
	return out, rows.Err()
}

func (r BookingRepository) loadHolders(bookingID string) ([]models.PassHolder, error) {
	rows, err := r.db().Query(`
		SELECT COALESCE(name,''), COALESCE(phone,'') FROM pass_holders
		WHERE booking_id=? ORDER BY position ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holders := []models.PassHolder{}
	for rows.Next() {
		var h models.PassHolder
		if err := rows.Scan(&h.Name, &h.Phone); err != nil {
			return nil, err
		}
		holders = append(holders, h)
	}
	return holders, rows.Err()
}

func (r BookingRepository) loadAllHolders() (map[string][]models.PassHolder, error) {
	rows, err := r.db().Query(`
		SELECT booking_id, COALESCE(name,''), COALESCE(phone,'') FROM pass_holders
		ORDER BY booking_id, position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]models.PassHolder{}
	for rows.Next() {
		var bookingID string
		var h models.PassHolder
		if err := rows.Scan(&bookingID, &h.Name, &h.Phone); err != nil {
			return nil, err
		}
		out[bookingID] = append(out[bookingID], h)
	}
	return out, rows.Err()
}
