package models

import "time"

// Car is a catalog listing. The image travels as base64 in JSON and is
// stored embedded in the row.
type Car struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ImageBase64 string    `json:"imageBase64,omitempty"`
	Passengers  int       `json:"passengers"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // available | not available
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	CarAvailable    = "available"
	CarNotAvailable = "not available"
)
