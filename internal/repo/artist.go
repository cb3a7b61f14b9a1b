package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gigbook/internal/domain"
)

// ArtistRepo defines the persistence operations for Artists.
// There is no Delete — the artist surface is deliberately narrower than the
// venue surface.
type ArtistRepo interface {
	// Create inserts a new artist and returns the persisted record.
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// GetByID retrieves a single artist by its integer primary key.
	// Returns domain.ErrNotFound if no artist with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Artist, error)

	// List returns all artists ordered by name.
	List(ctx context.Context) ([]domain.Artist, error)

	// SearchByName returns the id and name of every artist whose name contains
	// term as a case-insensitive substring. An empty term matches all artists.
	SearchByName(ctx context.Context, term string) ([]domain.SearchHit, error)

	// Update overwrites the mutable fields of an existing artist and returns
	// the updated record. Returns domain.ErrNotFound if the ID does not exist.
	Update(ctx context.Context, artist domain.Artist) (domain.Artist, error)
}

// pgArtistRepo is the Postgres implementation of ArtistRepo.
type pgArtistRepo struct {
	db db
}

// NewArtistRepo constructs an ArtistRepo backed by the provided db connection.
func NewArtistRepo(db db) ArtistRepo {
	return &pgArtistRepo{db: db}
}

// Create inserts a new artist row and returns the full persisted record.
func (r *pgArtistRepo) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	const q = `
		INSERT INTO artists (name, city, state, phone, genres, facebook_link, image_link)
		VALUES (@name, @city, @state, @phone, @genres, @facebook_link, @image_link)
		RETURNING id, name, city, state, phone, genres, facebook_link, image_link, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":          artist.Name,
		"city":          artist.City,
		"state":         artist.State,
		"phone":         artist.Phone,
		"genres":        artist.Genres,
		"facebook_link": artist.FacebookLink,
		"image_link":    artist.ImageLink,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an artist by primary key.
func (r *pgArtistRepo) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	const q = `
		SELECT id, name, city, state, phone, genres, facebook_link, image_link, created_at, updated_at
		FROM artists
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all artists ordered by name.
func (r *pgArtistRepo) List(ctx context.Context) ([]domain.Artist, error) {
	const q = `
		SELECT id, name, city, state, phone, genres, facebook_link, image_link, created_at, updated_at
		FROM artists
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: %w", err)
	}
	defer rows.Close()

	var artists []domain.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ArtistRepo.List: scan: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: rows: %w", err)
	}

	return artists, nil
}

// SearchByName performs a case-insensitive substring match on the name column.
func (r *pgArtistRepo) SearchByName(ctx context.Context, term string) ([]domain.SearchHit, error) {
	const q = `
		SELECT id, name
		FROM artists
		WHERE name ILIKE '%' || @term || '%'`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"term": term})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.SearchByName: %w", err)
	}
	defer rows.Close()

	hits := []domain.SearchHit{}
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return nil, fmt.Errorf("repo.ArtistRepo.SearchByName: scan: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.SearchByName: rows: %w", err)
	}
	return hits, nil
}

// Update overwrites the mutable fields of an artist and returns the updated record.
func (r *pgArtistRepo) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	const q = `
		UPDATE artists
		SET name          = @name,
		    city          = @city,
		    state         = @state,
		    phone         = @phone,
		    genres        = @genres,
		    facebook_link = @facebook_link,
		    image_link    = @image_link,
		    updated_at    = now()
		WHERE id = @id
		RETURNING id, name, city, state, phone, genres, facebook_link, image_link, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":            artist.ID,
		"name":          artist.Name,
		"city":          artist.City,
		"state":         artist.State,
		"phone":         artist.Phone,
		"genres":        artist.Genres,
		"facebook_link": artist.FacebookLink,
		"image_link":    artist.ImageLink,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Update: %w", err)
	}
	return result, nil
}

// scanArtist maps a single database row into a domain.Artist.
func scanArtist(s scanner) (domain.Artist, error) {
	var a domain.Artist
	err := s.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone,
		&a.Genres, &a.FacebookLink, &a.ImageLink, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Artist{}, domain.ErrNotFound
		}
		return domain.Artist{}, err
	}
	return a, nil
}
