package repositories

import (
	"database/sql"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/domain/models"
)

type BillRepo struct {
	DB *sql.DB
}

func (r BillRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const billColumns = `
	id, taxi_number, DATE_FORMAT(bill_date, '%Y-%m-%d'), DATE_FORMAT(journey_date, '%Y-%m-%d'),
	customer_name, from_location, to_location,
	taxi_rate, per_day, open_km, close_km, total_km, total_bill, extra_charges,
	balance, created_at`

func scanBill(row interface{ Scan(...any) error }) (models.Bill, error) {
	var b models.Bill
	var taxiRate, perDay, openKm, closeKm, totalKm, totalBill, extra sql.NullFloat64
	err := row.Scan(
		&b.ID, &b.TaxiNumber, &b.BillDate, &b.JourneyDate,
		&b.CustomerName, &b.From, &b.To,
		&taxiRate, &perDay, &openKm, &closeKm, &totalKm, &totalBill, &extra,
		&b.Balance, &b.CreatedAt,
	)
	if err != nil {
		return models.Bill{}, err
	}
	b.TaxiRate = nullFloat(taxiRate)
	b.PerDay = nullFloat(perDay)
	b.OpenKm = nullFloat(openKm)
	b.CloseKm = nullFloat(closeKm)
	b.TotalKm = nullFloat(totalKm)
	b.TotalBill = nullFloat(totalBill)
	b.ExtraCharges = nullFloat(extra)
	return b, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Insert persists a finished bill; bills are never mutated afterwards.
func (r BillRepo) Insert(b *models.Bill) error {
	res, err := r.db().Exec(`
		INSERT INTO bills
			(taxi_number, bill_date, journey_date, customer_name, from_location, to_location,
			 taxi_rate, per_day, open_km, close_km, total_km, total_bill, extra_charges, balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.TaxiNumber, b.BillDate, b.JourneyDate, b.CustomerName, b.From, b.To,
		floatArg(b.TaxiRate), floatArg(b.PerDay), floatArg(b.OpenKm), floatArg(b.CloseKm),
		floatArg(b.TotalKm), floatArg(b.TotalBill), floatArg(b.ExtraCharges), b.Balance)
	if err != nil {
		return err
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

func (r BillRepo) GetByID(id int64) (models.Bill, error) {
	row := r.db().QueryRow(`SELECT`+billColumns+` FROM bills WHERE id = ?`, id)
	return scanBill(row)
}

func (r BillRepo) List() ([]models.Bill, error) {
	rows, err := r.db().Query(`SELECT` + billColumns + ` FROM bills ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BillRepo) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM bills`).Scan(&n)
	return n, err
}
