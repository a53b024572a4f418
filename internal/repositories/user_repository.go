package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "passgate-backend/internal/config"
	"passgate-backend/internal/domain"
	"passgate-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id,
	       COALESCE(name,''),
	       COALESCE(username,''),
	       COALESCE(email,''),
	       COALESCE(phone,''),
	       COALESCE(role,'staff'),
	       COALESCE(status,'active')`

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + userColumns + ` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

// GetByLogin looks a user up by email or username, including the
// password hash for credential checks.
func (r UserRepository) GetByLogin(login string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT `+userColumns+`, COALESCE(password_hash,'')
		FROM users
		WHERE email=? OR username=?
		LIMIT 1`, login, login).
		Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

// CountByLogin reports how many users already claim the email or
// username, used for registration conflicts.
func (r UserRepository) CountByLogin(email, username string) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email=? OR username=?`, email, username).Scan(&n)
	return n, err
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?,?,?,?,?,?,?)`,
		u.Name, u.Username, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status,
	)
	if err != nil {
		return models.User{}, err
	}
	u.ID, _ = res.LastInsertId()
	u.PasswordHash = ""
	return u, nil
}

// Update performs PATCH-style updates based on key presence. Password
// changes arrive pre-hashed from the service.
func (r UserRepository) Update(id int64, upd models.UserUpdate, passwordHash string) error {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, strings.TrimSpace(*upd.Name))
	}
	if upd.Email != nil {
		sets = append(sets, "email=?")
		args = append(args, strings.TrimSpace(*upd.Email))
	}
	if upd.Phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, strings.TrimSpace(*upd.Phone))
	}
	if upd.Role != nil {
		sets = append(sets, "role=?")
		args = append(args, *upd.Role)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *upd.Status)
	}
	if passwordHash != "" {
		sets = append(sets, "password_hash=?")
		args = append(args, passwordHash)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE users SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
