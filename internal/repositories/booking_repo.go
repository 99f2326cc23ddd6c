package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/db"
	"travelbackend/internal/domain/models"
)

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id, booking_code, full_name, email, mobile_number, selected_car,
	DATE_FORMAT(pickup_date, '%Y-%m-%d'), pickup_time,
	pickup_location, dropoff_location, status, COALESCE(reject_reason, ''),
	user_id, created_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var userID sql.NullInt64
	err := row.Scan(
		&b.ID, &b.BookingCode, &b.FullName, &b.Email, &b.MobileNumber, &b.SelectedCar,
		&b.PickupDate, &b.PickupTime,
		&b.PickupLocation, &b.DropoffLocation, &b.Status, &b.RejectReason,
		&userID, &b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if userID.Valid {
		v := userID.Int64
		b.UserID = &v
	}
	return b, nil
}

// Insert persists a new booking and fills in the store-assigned id.
func (r BookingRepo) Insert(b *models.Booking) error {
	var userID any
	if b.UserID != nil {
		userID = *b.UserID
	}
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(booking_code, full_name, email, mobile_number, selected_car,
			 pickup_date, pickup_time, pickup_location, dropoff_location,
			 status, reject_reason, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?)
	`, b.BookingCode, b.FullName, b.Email, b.MobileNumber, b.SelectedCar,
		b.PickupDate, b.PickupTime, b.PickupLocation, b.DropoffLocation,
		b.Status, userID, b.CreatedAt)
	if err != nil {
		return err
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT`+bookingColumns+` FROM bookings WHERE id = ?`, id)
	return scanBooking(row)
}

// List returns bookings newest-created-first; equal timestamps fall back to
// id ordering so the result is stable within a query.
func (r BookingRepo) List() ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListByUser returns the bookings owned by one user, newest first.
func (r BookingRepo) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT`+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]models.Booking, error) {
	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// UpdateStatus applies the transition as a single atomic update, guarded on
// the expected current status so a lost race surfaces as zero rows.
func (r BookingRepo) UpdateStatus(id int64, fromStatus, toStatus, rejectReason string) (int64, error) {
	res, err := r.db().Exec(`
		UPDATE bookings SET status = ?, reject_reason = ?
		WHERE id = ? AND status = ?
	`, toStatus, db.NullIfEmpty(rejectReason), id, fromStatus)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a booking; the second return value reports whether a row
// actually existed.
func (r BookingRepo) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// CountByStatus tallies bookings per status for the dashboard.
func (r BookingRepo) CountByStatus() (map[string]int, error) {
	rows, err := r.db().Query(`SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

// ErrNoRows re-exported so services do not import database/sql for the
// sentinel alone.
var ErrNoRows = sql.ErrNoRows

// IsNoRows reports whether err is the driver's missing-row sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
