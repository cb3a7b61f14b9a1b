// Package handler implements the HTTP handlers for the Gigbook site.
// All handlers are methods on Server. Methods are split into resource-specific
// files (venue.go, artist.go, show.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gigbook/internal/domain"
	"gigbook/internal/view"
)

// VenueServicer defines the business operations the venue handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VenueServicer interface {
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	GetByID(ctx context.Context, id int64) (domain.Venue, error)
	List(ctx context.Context) ([]domain.Venue, error)
	Search(ctx context.Context, term string) (domain.SearchResult, error)
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, id int64) (name string, err error)
}

// ArtistServicer defines the business operations the artist handlers depend on.
type ArtistServicer interface {
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	GetByID(ctx context.Context, id int64) (domain.Artist, error)
	List(ctx context.Context) ([]domain.Artist, error)
	Search(ctx context.Context, term string) (domain.SearchResult, error)
	Update(ctx context.Context, artist domain.Artist) (domain.Artist, error)
}

// ShowServicer defines the business operations the show handlers depend on.
type ShowServicer interface {
	Create(ctx context.Context, show domain.Show) (domain.Show, error)
	List(ctx context.Context) ([]domain.ShowListing, error)
}

// Server holds the dependencies shared by all page handlers.
type Server struct {
	venues  VenueServicer
	artists ArtistServicer
	shows   ShowServicer
	render  *view.Renderer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(venues VenueServicer, artists ArtistServicer, shows ShowServicer, render *view.Renderer) *Server {
	return &Server{venues: venues, artists: artists, shows: shows, render: render}
}

// Routes returns the full route table for the site.
// The surface is deliberately asymmetric: venues have delete, artists do not,
// and shows are create-only.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.Home)
	r.Get("/healthz", s.Healthz)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", s.ListVenues)
		r.Post("/search", s.SearchVenues)
		r.Get("/create", s.NewVenueForm)
		r.Post("/create", s.CreateVenue)
		r.Get("/{id}", s.ShowVenue)
		r.Get("/{id}/edit", s.EditVenueForm)
		r.Post("/{id}/edit", s.UpdateVenue)
		r.Get("/{id}/delete", s.DeleteVenue)
		r.Post("/{id}/delete", s.DeleteVenue)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", s.ListArtists)
		r.Post("/search", s.SearchArtists)
		r.Get("/create", s.NewArtistForm)
		r.Post("/create", s.CreateArtist)
		r.Get("/{id}", s.ShowArtist)
		r.Get("/{id}/edit", s.EditArtistForm)
		r.Post("/{id}/edit", s.UpdateArtist)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", s.ListShows)
		r.Get("/create", s.NewShowForm)
		r.Post("/create", s.CreateShow)
	})

	r.NotFound(s.NotFoundPage)

	return r
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "home.html", &view.HomeData{Page: view.Page{Flash: s.popFlash(w, r)}})
}

// Healthz handles GET /healthz. Always 200 while the process is up.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
