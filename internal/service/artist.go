package service

import (
	"context"
	"fmt"
	"strings"

	"gigbook/internal/domain"
	"gigbook/internal/repo"
)

// ArtistService implements business logic for Artist operations.
type ArtistService struct {
	repo repo.ArtistRepo
}

// NewArtistService constructs an ArtistService backed by the provided ArtistRepo.
func NewArtistService(r repo.ArtistRepo) *ArtistService {
	return &ArtistService{repo: r}
}

// Create validates and persists a new artist. Name is the only required field.
func (s *ArtistService) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	if strings.TrimSpace(artist.Name) == "" {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w: name is required", domain.ErrValidation)
	}

	created, err := s.repo.Create(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single artist by ID.
func (s *ArtistService) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.GetByID: %w", err)
	}
	return artist, nil
}

// List returns all artists.
func (s *ArtistService) List(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ArtistService.List: %w", err)
	}
	return artists, nil
}

// Search returns the artists whose name contains term, case-insensitively.
func (s *ArtistService) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	hits, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.ArtistService.Search: %w", err)
	}
	return domain.SearchResult{Count: len(hits), Data: hits}, nil
}

// Update validates and overwrites the mutable fields of an existing artist.
func (s *ArtistService) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	if strings.TrimSpace(artist.Name) == "" {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Update: %w: name is required", domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Update: %w", err)
	}
	return updated, nil
}
