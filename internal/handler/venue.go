package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gigbook/internal/domain"
	"gigbook/internal/view"
)

// ListVenues handles GET /venues.
// Fail-soft: a persistence error logs and renders the page with zero rows
// rather than surfacing a 500.
func (s *Server) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "venue listing failed", "error", err)
		venues = nil
	}

	s.renderPage(w, r, http.StatusOK, "venues.html", &view.VenueListData{
		Page:   view.Page{Flash: s.popFlash(w, r)},
		Venues: venues,
	})
}

// SearchVenues handles POST /venues/search.
// The search term comes from the search_term form field; an empty term
// matches every venue.
func (s *Server) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.serverError(w, r, err)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "search_venues.html", &view.SearchData{
		Page:       view.Page{Flash: s.popFlash(w, r)},
		SearchTerm: term,
		Results:    results,
	})
}

// ShowVenue handles GET /venues/{id}.
// A missing record renders the 404 page rather than an empty detail view.
func (s *Server) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	venue, err := s.venues.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(w, r, "That venue does not exist.")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "show_venue.html", &view.VenueDetailData{
		Page:  view.Page{Flash: s.popFlash(w, r)},
		Venue: venue,
	})
}

// NewVenueForm handles GET /venues/create: an empty, pre-initialized form.
func (s *Server) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "new_venue.html", &view.VenueFormData{
		Page: view.Page{Flash: s.popFlash(w, r)},
	})
}

// CreateVenue handles POST /venues/create.
// On success the landing page carries a flash naming the new venue; on any
// failure the flash names the venue and nothing is persisted.
func (s *Server) CreateVenue(w http.ResponseWriter, r *http.Request) {
	form, err := bindVenueForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	created, err := s.venues.Create(r.Context(), form.toVenue(0))
	if err != nil {
		setFlash(w, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, fmt.Sprintf("Venue %s was successfully listed!", created.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditVenueForm handles GET /venues/{id}/edit: the form populated with the
// venue's current values.
func (s *Server) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	venue, err := s.venues.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(w, r, "That venue does not exist.")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "edit_venue.html", &view.VenueFormData{
		Page:  view.Page{Flash: s.popFlash(w, r)},
		Venue: venue,
	})
}

// UpdateVenue handles POST /venues/{id}/edit.
// After either outcome the browser lands back on the detail view for the id.
func (s *Server) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	form, err := bindVenueForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	updated, err := s.venues.Update(r.Context(), form.toVenue(id))
	if err != nil {
		setFlash(w, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
	} else {
		setFlash(w, fmt.Sprintf("Venue %s was successfully updated!", updated.Name))
	}
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// DeleteVenue handles GET and POST /venues/{id}/delete.
// The success flash names the deleted venue; the failure flash falls back to
// the id, since the name may never have been fetched.
func (s *Server) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	name, err := s.venues.Delete(r.Context(), id)
	if err != nil {
		setFlash(w, fmt.Sprintf("An error occurred. Venue with id %d could not be deleted.", id))
	} else {
		setFlash(w, fmt.Sprintf("Venue %s successfully deleted.", name))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
