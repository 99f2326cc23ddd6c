package models

import "time"

// Bill is created by an administrator and never mutated afterwards. Derived
// fields are stored alongside the inputs so history renders without
// recomputation.
type Bill struct {
	ID           int64     `json:"id"`
	TaxiNumber   string    `json:"taxiNumber"`
	BillDate     string    `json:"date"`        // YYYY-MM-DD
	JourneyDate  string    `json:"journeyDate"` // YYYY-MM-DD
	CustomerName string    `json:"customerName"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	TaxiRate     *float64  `json:"taxiRate,omitempty"`
	PerDay       *float64  `json:"perDay,omitempty"`
	OpenKm       *float64  `json:"openKm,omitempty"`
	CloseKm      *float64  `json:"closeKm,omitempty"`
	TotalKm      *float64  `json:"totalKm,omitempty"`
	TotalBill    *float64  `json:"totalBill,omitempty"`
	ExtraCharges *float64  `json:"extraCharges,omitempty"`
	Balance      float64   `json:"balance"`
	CreatedAt    time.Time `json:"createdAt"`
}
