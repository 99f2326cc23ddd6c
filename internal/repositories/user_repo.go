package repositories

import (
	"database/sql"
	"time"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `
	id, name, email, mobile, password_hash, role, signup_method,
	last_login_at, COALESCE(last_login_device, ''), created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	var lastLogin sql.NullTime
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Mobile, &u.PasswordHash, &u.Role, &u.SignupMethod,
		&lastLogin, &u.LastLoginDevice, &u.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return u, nil
}

func (r UserRepo) Insert(u *models.User) error {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, mobile, password_hash, role, signup_method)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Name, u.Email, u.Mobile, u.PasswordHash, u.Role, u.SignupMethod)
	if err != nil {
		return err
	}
	u.ID, _ = res.LastInsertId()
	return nil
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	row := r.db().QueryRow(`SELECT`+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByIdentifier looks a user up by email or mobile number; the login form
// accepts either.
func (r UserRepo) GetByIdentifier(identifier string) (models.User, error) {
	row := r.db().QueryRow(`SELECT`+userColumns+` FROM users WHERE email = ? OR mobile = ?`, identifier, identifier)
	return scanUser(row)
}

func (r UserRepo) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r UserRepo) ExistsByEmailOrMobile(email, mobile string) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ? OR mobile = ?`, email, mobile).Scan(&n)
	return n > 0, err
}

func (r UserRepo) UpdateRole(id int64, role string) (bool, error) {
	res, err := r.db().Exec(`UPDATE users SET role = ? WHERE id = ?`, role, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r UserRepo) UpdatePassword(id int64, passwordHash string) error {
	_, err := r.db().Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	return err
}

// RecordLogin stamps the login time and coarse device descriptor.
func (r UserRepo) RecordLogin(id int64, device string, at time.Time) error {
	_, err := r.db().Exec(`UPDATE users SET last_login_at = ?, last_login_device = ? WHERE id = ?`, at, device, id)
	return err
}

func (r UserRepo) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r UserRepo) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
