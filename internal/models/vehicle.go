package models

import "time"

// Color is a reference-data row for the vehicle color lookup.
type Color struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // unique
}

// Vehicle belongs to the driver profile of a user and references a color.
type Vehicle struct {
	ID        string    `json:"id"`      // UUID
	UserID    string    `json:"user_id"` // owning user (driver)
	ColorID   int64     `json:"color_id"`
	Plate     string    `json:"plate"` // unique
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}
