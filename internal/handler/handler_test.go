package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gigbook/internal/domain"
	"gigbook/internal/handler"
	"gigbook/internal/view"
)

// ---- mock servicers --------------------------------------------------------

type mockVenueServicer struct {
	create  func(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	getByID func(ctx context.Context, id int64) (domain.Venue, error)
	list    func(ctx context.Context) ([]domain.Venue, error)
	search  func(ctx context.Context, term string) (domain.SearchResult, error)
	update  func(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	delete  func(ctx context.Context, id int64) (string, error)
}

func (m *mockVenueServicer) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	return m.create(ctx, venue)
}
func (m *mockVenueServicer) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	return m.getByID(ctx, id)
}
func (m *mockVenueServicer) List(ctx context.Context) ([]domain.Venue, error) {
	return m.list(ctx)
}
func (m *mockVenueServicer) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.search(ctx, term)
}
func (m *mockVenueServicer) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	return m.update(ctx, venue)
}
func (m *mockVenueServicer) Delete(ctx context.Context, id int64) (string, error) {
	return m.delete(ctx, id)
}

type mockArtistServicer struct {
	create  func(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	getByID func(ctx context.Context, id int64) (domain.Artist, error)
	list    func(ctx context.Context) ([]domain.Artist, error)
	search  func(ctx context.Context, term string) (domain.SearchResult, error)
	update  func(ctx context.Context, artist domain.Artist) (domain.Artist, error)
}

func (m *mockArtistServicer) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	return m.create(ctx, artist)
}
func (m *mockArtistServicer) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	return m.getByID(ctx, id)
}
func (m *mockArtistServicer) List(ctx context.Context) ([]domain.Artist, error) {
	return m.list(ctx)
}
func (m *mockArtistServicer) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.search(ctx, term)
}
func (m *mockArtistServicer) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	return m.update(ctx, artist)
}

type mockShowServicer struct {
	create func(ctx context.Context, show domain.Show) (domain.Show, error)
	list   func(ctx context.Context) ([]domain.ShowListing, error)
}

func (m *mockShowServicer) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	return m.create(ctx, show)
}
func (m *mockShowServicer) List(ctx context.Context) ([]domain.ShowListing, error) {
	return m.list(ctx)
}

// compile-time checks
var (
	_ handler.VenueServicer  = (*mockVenueServicer)(nil)
	_ handler.ArtistServicer = (*mockArtistServicer)(nil)
	_ handler.ShowServicer   = (*mockShowServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newTestRouter wires a Server over mock services and the real embedded
// templates. Pass nil for servicers the test does not exercise.
func newTestRouter(t *testing.T, venues handler.VenueServicer, artists handler.ArtistServicer, shows handler.ShowServicer) http.Handler {
	t.Helper()
	render, err := view.New()
	require.NoError(t, err, "parse templates")
	return handler.NewServer(venues, artists, shows, render).Routes()
}

// formRequest builds a POST with an URL-encoded form body.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashMessage extracts the status message set on the response, if any.
func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "gigbook_flash" {
			v, err := url.QueryUnescape(c.Value)
			require.NoError(t, err)
			return v
		}
	}
	return ""
}
