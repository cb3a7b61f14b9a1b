package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gigbook/internal/domain"
	"gigbook/internal/view"
)

// ListArtists handles GET /artists.
// Fail-soft like the venues listing: errors log and render zero rows.
func (s *Server) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "artist listing failed", "error", err)
		artists = nil
	}

	s.renderPage(w, r, http.StatusOK, "artists.html", &view.ArtistListData{
		Page:    view.Page{Flash: s.popFlash(w, r)},
		Artists: artists,
	})
}

// SearchArtists handles POST /artists/search.
func (s *Server) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.serverError(w, r, err)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "search_artists.html", &view.SearchData{
		Page:       view.Page{Flash: s.popFlash(w, r)},
		SearchTerm: term,
		Results:    results,
	})
}

// ShowArtist handles GET /artists/{id}.
func (s *Server) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	artist, err := s.artists.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(w, r, "That artist does not exist.")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "show_artist.html", &view.ArtistDetailData{
		Page:   view.Page{Flash: s.popFlash(w, r)},
		Artist: artist,
	})
}

// NewArtistForm handles GET /artists/create: an empty, pre-initialized form.
func (s *Server) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "new_artist.html", &view.ArtistFormData{
		Page: view.Page{Flash: s.popFlash(w, r)},
	})
}

// CreateArtist handles POST /artists/create.
func (s *Server) CreateArtist(w http.ResponseWriter, r *http.Request) {
	form, err := bindArtistForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	created, err := s.artists.Create(r.Context(), form.toArtist(0))
	if err != nil {
		setFlash(w, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	setFlash(w, fmt.Sprintf("Artist %s was successfully listed!", created.Name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditArtistForm handles GET /artists/{id}/edit.
func (s *Server) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	artist, err := s.artists.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notFound(w, r, "That artist does not exist.")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, "edit_artist.html", &view.ArtistFormData{
		Page:   view.Page{Flash: s.popFlash(w, r)},
		Artist: artist,
	})
}

// UpdateArtist handles POST /artists/{id}/edit.
// After either outcome the browser lands back on the detail view for the id.
func (s *Server) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.NotFoundPage(w, r)
		return
	}

	form, err := bindArtistForm(r)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	updated, err := s.artists.Update(r.Context(), form.toArtist(id))
	if err != nil {
		setFlash(w, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
	} else {
		setFlash(w, fmt.Sprintf("Artist %s was successfully updated!", updated.Name))
	}
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
