package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gigbook/internal/domain"
)

// ShowRepo defines the persistence operations for Shows.
// Shows are insert-only: no update or delete exists on this surface.
type ShowRepo interface {
	// Create inserts a new show and returns the persisted record.
	// The artist_id and venue_id must already exist; the caller is expected
	// to have verified both (the FK constraints are the backstop).
	Create(ctx context.Context, show domain.Show) (domain.Show, error)

	// ListWithDetails returns every show joined with its artist and venue,
	// ordered by start_time ascending.
	ListWithDetails(ctx context.Context) ([]domain.ShowListing, error)
}

// pgShowRepo is the Postgres implementation of ShowRepo.
type pgShowRepo struct {
	db db
}

// NewShowRepo constructs a ShowRepo backed by the provided db connection.
func NewShowRepo(db db) ShowRepo {
	return &pgShowRepo{db: db}
}

// Create inserts a new show row and returns the full persisted record.
func (r *pgShowRepo) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	const q = `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES (@artist_id, @venue_id, @start_time)
		RETURNING id, artist_id, venue_id, start_time, created_at`

	args := pgx.NamedArgs{
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime,
	}

	row := r.db.QueryRow(ctx, q, args)
	var result domain.Show
	err := row.Scan(&result.ID, &result.ArtistID, &result.VenueID, &result.StartTime, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Show{}, fmt.Errorf("repo.ShowRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Show{}, fmt.Errorf("repo.ShowRepo.Create: %w", err)
	}
	return result, nil
}

// ListWithDetails joins shows with their artist and venue into flat listing rows.
func (r *pgShowRepo) ListWithDetails(ctx context.Context) ([]domain.ShowListing, error) {
	const q = `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListWithDetails: %w", err)
	}
	defer rows.Close()

	var listings []domain.ShowListing
	for rows.Next() {
		var l domain.ShowListing
		err := rows.Scan(&l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime)
		if err != nil {
			return nil, fmt.Errorf("repo.ShowRepo.ListWithDetails: scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListWithDetails: rows: %w", err)
	}

	return listings, nil
}
