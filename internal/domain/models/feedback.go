package models

import "time"

type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"` // 1-5
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
