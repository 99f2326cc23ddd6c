package repositories

import (
	"database/sql"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/domain/models"
)

type FeedbackRepo struct {
	DB *sql.DB
}

func (r FeedbackRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r FeedbackRepo) Insert(f *models.Feedback) error {
	res, err := r.db().Exec(`
		INSERT INTO feedback (name, email, rating, message)
		VALUES (?, ?, ?, ?)
	`, f.Name, f.Email, f.Rating, f.Message)
	if err != nil {
		return err
	}
	f.ID, _ = res.LastInsertId()
	return nil
}

func (r FeedbackRepo) List() ([]models.Feedback, error) {
	rows, err := r.db().Query(`
		SELECT id, name, email, rating, message, created_at
		FROM feedback ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Rating, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r FeedbackRepo) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM feedback WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
