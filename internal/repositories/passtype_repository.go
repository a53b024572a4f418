package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "passgate-backend/internal/config"
	intdb "passgate-backend/internal/db"
	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"

	"github.com/google/uuid"
)

type PassTypeRepository struct {
	DB *sql.DB
}

func (r PassTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const passTypeColumns = `id,
	       COALESCE(name,''),
	       COALESCE(price,0),
	       COALESCE(max_people,1),
	       COALESCE(is_active,1),
	       COALESCE(description,'')`

// List returns pass types, optionally restricted to active ones.
func (r PassTypeRepository) List(onlyActive bool) ([]models.PassType, error) {
	query := `SELECT ` + passTypeColumns + ` FROM pass_types`
	if onlyActive {
		query += ` WHERE is_active=1`
	}
	query += ` ORDER BY price ASC, name ASC`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PassType{}
	for rows.Next() {
		var pt models.PassType
		if err := rows.Scan(&pt.ID, &pt.Name, &pt.Price, &pt.MaxPeople, &pt.IsActive, &pt.Description); err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}

func (r PassTypeRepository) GetByID(id string) (models.PassType, error) {
	var pt models.PassType
	if strings.TrimSpace(id) == "" {
		return pt, domain.ValidationError{Field: "id", Msg: "missing pass type id"}
	}
	err := r.db().QueryRow(`SELECT `+passTypeColumns+` FROM pass_types WHERE id=? LIMIT 1`, id).
		Scan(&pt.ID, &pt.Name, &pt.Price, &pt.MaxPeople, &pt.IsActive, &pt.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pt, domain.NotFoundError{Resource: "pass type", Err: err}
		}
		return pt, err
	}
	return pt, nil
}

// Create inserts a pass type, assigning an id when the caller left it
// empty.
func (r PassTypeRepository) Create(pt models.PassType) (models.PassType, error) {
	if strings.TrimSpace(pt.ID) == "" {
		pt.ID = uuid.NewString()
	}
	_, err := r.db().Exec(`
		INSERT INTO pass_types (id, name, price, max_people, is_active, description)
		VALUES (?,?,?,?,?,?)`,
		pt.ID, pt.Name, pt.Price, pt.MaxPeople, pt.IsActive, intdb.NullIfEmpty(pt.Description),
	)
	if err != nil {
		return models.PassType{}, err
	}
	return pt, nil
}

// Update performs PATCH-style updates based on key presence.
func (r PassTypeRepository) Update(id string, upd models.PassTypeUpdate) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "missing pass type id"}
	}
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Price != nil {
		sets = append(sets, "price=?")
		args = append(args, *upd.Price)
	}
	if upd.MaxPeople != nil {
		sets = append(sets, "max_people=?")
		args = append(args, *upd.MaxPeople)
	}
	if upd.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *upd.IsActive)
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, intdb.NullIfEmpty(strings.TrimSpace(*upd.Description)))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE pass_types SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r PassTypeRepository) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationError{Field: "id", Msg: "missing pass type id"}
	}
	res, err := r.db().Exec(`DELETE FROM pass_types WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "pass type"}
	}
	return nil
}
