package repositories

import (
	"database/sql"
	"encoding/base64"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/domain/models"
)

type CarRepo struct {
	DB *sql.DB
}

func (r CarRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CarRepo) Insert(c *models.Car) error {
	image, err := base64.StdEncoding.DecodeString(c.ImageBase64)
	if err != nil {
		return err
	}
	res, err := r.db().Exec(`
		INSERT INTO carlist (name, image, passengers, description, status)
		VALUES (?, ?, ?, ?, ?)
	`, c.Name, image, c.Passengers, c.Description, c.Status)
	if err != nil {
		return err
	}
	c.ID, _ = res.LastInsertId()
	return nil
}

// List returns the full catalog including embedded images, newest first.
func (r CarRepo) List() ([]models.Car, error) {
	rows, err := r.db().Query(`
		SELECT id, name, COALESCE(image, ''), passengers, COALESCE(description, ''), status, created_at
		FROM carlist ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Car{}
	for rows.Next() {
		var c models.Car
		var image []byte
		if err := rows.Scan(&c.ID, &c.Name, &image, &c.Passengers, &c.Description, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		if len(image) > 0 {
			c.ImageBase64 = base64.StdEncoding.EncodeToString(image)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update changes the editable fields; the image is only replaced when a new
// payload is supplied.
func (r CarRepo) Update(id int64, name, description string, passengers int, status, imageBase64 string) (bool, error) {
	var res sql.Result
	var err error
	if imageBase64 != "" {
		var image []byte
		image, err = base64.StdEncoding.DecodeString(imageBase64)
		if err != nil {
			return false, err
		}
		res, err = r.db().Exec(`
			UPDATE carlist SET name = ?, description = ?, passengers = ?, status = ?, image = ?
			WHERE id = ?`, name, description, passengers, status, image, id)
	} else {
		res, err = r.db().Exec(`
			UPDATE carlist SET name = ?, description = ?, passengers = ?, status = ?
			WHERE id = ?`, name, description, passengers, status, id)
	}
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r CarRepo) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM carlist WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r CarRepo) CountByStatus() (available, unavailable int, err error) {
	rows, err := r.db().Query(`SELECT status, COUNT(*) FROM carlist GROUP BY status`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, 0, err
		}
		if status == models.CarAvailable {
			available += n
		} else {
			unavailable += n
		}
	}
	return available, unavailable, rows.Err()
}
