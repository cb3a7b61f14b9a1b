// Package domain contains the core data types for the Gigbook application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, view).
package domain

import "time"

// Venue represents a place where shows are booked.
// IDs are database-generated serial integers and never change once assigned.
type Venue struct {
	ID           int64
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	Genres       []string
	FacebookLink string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
