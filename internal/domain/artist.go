package domain

import "time"

// Artist represents a performer that can be booked at venues.
// ImageLink is optional and empty when the artist has no promo image.
type Artist struct {
	ID           int64
	Name         string
	City         string
	State        string
	Phone        string
	Genres       []string
	FacebookLink string
	ImageLink    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
