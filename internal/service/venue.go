// Package service contains the business logic for Gigbook.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"gigbook/internal/domain"
	"gigbook/internal/repo"
)

// VenueService implements business logic for Venue operations.
type VenueService struct {
	repo repo.VenueRepo
}

// NewVenueService constructs a VenueService backed by the provided VenueRepo.
func NewVenueService(r repo.VenueRepo) *VenueService {
	return &VenueService{repo: r}
}

// Create validates and persists a new venue. Name is the only required field.
func (s *VenueService) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if strings.TrimSpace(venue.Name) == "" {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w: name is required", domain.ErrValidation)
	}

	created, err := s.repo.Create(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single venue by ID.
func (s *VenueService) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.GetByID: %w", err)
	}
	return venue, nil
}

// List returns all venues.
func (s *VenueService) List(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.List: %w", err)
	}
	return venues, nil
}

// Search returns the venues whose name contains term, case-insensitively.
// An empty term matches every venue (a substring of everything).
func (s *VenueService) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	hits, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.VenueService.Search: %w", err)
	}
	return domain.SearchResult{Count: len(hits), Data: hits}, nil
}

// Update validates and overwrites the mutable fields of an existing venue.
func (s *VenueService) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if strings.TrimSpace(venue.Name) == "" {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Update: %w: name is required", domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a venue by ID and returns the name it had, for messaging.
func (s *VenueService) Delete(ctx context.Context, id int64) (string, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.VenueService.Delete: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("service.VenueService.Delete: %w", err)
	}
	return venue.Name, nil
}
