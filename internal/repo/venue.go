// Package repo contains all database access logic for Gigbook.
// Each record type has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gigbook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// VenueRepo defines the persistence operations for Venues.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VenueRepo interface {
	// Create inserts a new venue and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// GetByID retrieves a single venue by its integer primary key.
	// Returns domain.ErrNotFound if no venue with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Venue, error)

	// List returns all venues ordered by name.
	List(ctx context.Context) ([]domain.Venue, error)

	// SearchByName returns the id and name of every venue whose name contains
	// term as a case-insensitive substring. An empty term matches all venues.
	SearchByName(ctx context.Context, term string) ([]domain.SearchHit, error)

	// Update overwrites the mutable fields of an existing venue and returns
	// the updated record. Returns domain.ErrNotFound if the ID does not exist.
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// Delete removes a venue by ID. Its shows go with it (FK cascade).
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgVenueRepo is the Postgres implementation of VenueRepo.
type pgVenueRepo struct {
	db db
}

// NewVenueRepo constructs a VenueRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVenueRepo(db db) VenueRepo {
	return &pgVenueRepo{db: db}
}

// Create inserts a new venue row and returns the full persisted record.
func (r *pgVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	const q = `
		INSERT INTO venues (name, city, state, address, phone, genres, facebook_link)
		VALUES (@name, @city, @state, @address, @phone, @genres, @facebook_link)
		RETURNING id, name, city, state, address, phone, genres, facebook_link, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":          venue.Name,
		"city":          venue.City,
		"state":         venue.State,
		"address":       venue.Address,
		"phone":         venue.Phone,
		"genres":        venue.Genres,
		"facebook_link": venue.FacebookLink,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a venue by primary key.
func (r *pgVenueRepo) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	const q = `
		SELECT id, name, city, state, address, phone, genres, facebook_link, created_at, updated_at
		FROM venues
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all venues ordered by name.
func (r *pgVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	const q = `
		SELECT id, name, city, state, address, phone, genres, facebook_link, created_at, updated_at
		FROM venues
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	defer rows.Close()

	var venues []domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VenueRepo.List: scan: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: rows: %w", err)
	}

	return venues, nil
}

// SearchByName performs a case-insensitive substring match on the name column.
// ILIKE with the term wrapped in % mirrors the behavior users expect from the
// search box; an empty term degenerates to '%%' and matches every row.
func (r *pgVenueRepo) SearchByName(ctx context.Context, term string) ([]domain.SearchHit, error) {
	const q = `
		SELECT id, name
		FROM venues
		WHERE name ILIKE '%' || @term || '%'`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"term": term})
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.SearchByName: %w", err)
	}
	defer rows.Close()

	hits := []domain.SearchHit{}
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, fmt.Errorf("repo.VenueRepo.SearchByName: scan: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.SearchByName: rows: %w", err)
	}
	return hits, nil
}

// Update overwrites the mutable fields of a venue and returns the updated record.
func (r *pgVenueRepo) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	const q = `
		UPDATE venues
		SET name          = @name,
		    city          = @city,
		    state         = @state,
		    address       = @address,
		    phone         = @phone,
		    genres        = @genres,
		    facebook_link = @facebook_link,
		    updated_at    = now()
		WHERE id = @id
		RETURNING id, name, city, state, address, phone, genres, facebook_link, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":            venue.ID,
		"name":          venue.Name,
		"city":          venue.City,
		"state":         venue.State,
		"address":       venue.Address,
		"phone":         venue.Phone,
		"genres":        venue.Genres,
		"facebook_link": venue.FacebookLink,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a venue by primary key.
func (r *pgVenueRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM venues WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.VenueRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VenueRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanVenue maps a single database row into a domain.Venue.
func scanVenue(s scanner) (domain.Venue, error) {
	var v domain.Venue
	err := s.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone,
		&v.Genres, &v.FacebookLink, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Venue{}, domain.ErrNotFound
		}
		return domain.Venue{}, err
	}
	return v, nil
}
