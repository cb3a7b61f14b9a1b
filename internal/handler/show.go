package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"gigbook/internal/domain"
	"gigbook/internal/view"
)

// ListShows handles GET /shows: every show joined with its artist and venue.
// Fail-soft like the other listings.
func (s *Server) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "show listing failed", "error", err)
		shows = nil
	}

	s.renderPage(w, r, http.StatusOK, "shows.html", &view.ShowListData{
		Page:  view.Page{Flash: s.popFlash(w, r)},
		Shows: shows,
	})
}

// NewShowForm handles GET /shows/create: an empty booking form.
func (s *Server) NewShowForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "new_show.html", &view.ShowFormData{
		Page: view.Page{Flash: s.popFlash(w, r)},
	})
}

// CreateShow handles POST /shows/create.
// Both the artist id and the venue id must resolve to existing records; when
// either misses, nothing is persisted and the flash tells the user to check
// the ids.
func (s *Server) CreateShow(w http.ResponseWriter, r *http.Request) {
	form, err := bindShowForm(r)
	if err != nil {
		if errors.Is(err, errBadShowForm) {
			setFlash(w, "An error occurred. Show could not be listed: "+err.Error()+".")
			http.Redirect(w, r, "/shows/create", http.StatusSeeOther)
			return
		}
		s.serverError(w, r, err)
		return
	}

	_, err = s.shows.Create(r.Context(), domain.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			setFlash(w, "Check if the artist id and venue id are right!")
			http.Redirect(w, r, "/shows/create", http.StatusSeeOther)
			return
		}
		setFlash(w, "An error occurred. Show could not be listed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
