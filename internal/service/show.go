package service

import (
	"context"
	"errors"
	"fmt"

	"gigbook/internal/domain"
	"gigbook/internal/repo"
)

// ShowService implements business logic for Show bookings.
// It depends on the artist and venue repos as well as its own, because
// creating a show requires both referenced records to exist.
type ShowService struct {
	shows   repo.ShowRepo
	artists repo.ArtistRepo
	venues  repo.VenueRepo
}

// NewShowService constructs a ShowService backed by the provided repos.
func NewShowService(shows repo.ShowRepo, artists repo.ArtistRepo, venues repo.VenueRepo) *ShowService {
	return &ShowService{shows: shows, artists: artists, venues: venues}
}

// Create books a show after verifying that both the artist and the venue
// exist. If either lookup misses, nothing is persisted and the returned error
// wraps domain.ErrNotFound.
func (s *ShowService) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	if _, err := s.artists.GetByID(ctx, show.ArtistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Show{}, fmt.Errorf("service.ShowService.Create: artist %d: %w", show.ArtistID, domain.ErrNotFound)
		}
		return domain.Show{}, fmt.Errorf("service.ShowService.Create: %w", err)
	}
	if _, err := s.venues.GetByID(ctx, show.VenueID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Show{}, fmt.Errorf("service.ShowService.Create: venue %d: %w", show.VenueID, domain.ErrNotFound)
		}
		return domain.Show{}, fmt.Errorf("service.ShowService.Create: %w", err)
	}

	created, err := s.shows.Create(ctx, show)
	if err != nil {
		return domain.Show{}, fmt.Errorf("service.ShowService.Create: %w", err)
	}
	return created, nil
}

// List returns every show joined with its artist and venue.
func (s *ShowService) List(ctx context.Context) ([]domain.ShowListing, error) {
	listings, err := s.shows.ListWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShowService.List: %w", err)
	}
	return listings, nil
}
