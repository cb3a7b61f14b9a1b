package domain

import "time"

// Show links one artist to one venue at a start time.
// Shows are created once and never edited or deleted directly; they are
// removed by the database when their venue or artist is deleted.
type Show struct {
	ID        int64
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
	CreatedAt time.Time
}

// ShowListing is a show joined with its artist and venue, flattened for the
// shows listing page. StartTime stays a time.Time here; the view layer owns
// the MM/DD/YYYY, HH:MM:SS presentation.
type ShowListing struct {
	VenueID         int64
	VenueName       string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
