package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"gigbook/internal/domain"
)

// funcs are the helpers available inside every template.
// "datetime" is the filter from the spec's presentation contract; "showtime"
// renders the fixed shows-listing format; "join" flattens genre lists.
var funcs = template.FuncMap{
	"datetime": FormatDatetime,
	"showtime": FormatShowTime,
	"join":     joinGenres,
}

// Renderer holds one parsed template per page, each combined with the shared
// layout. Parsing happens once at construction; Render only executes.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates and returns a ready Renderer.
// Every file under templates/pages is combined with templates/layout.html.
func New() (*Renderer, error) {
	return NewFromFS(templatesFS)
}

// NewFromFS builds a Renderer from an arbitrary fs.FS with the same tree
// shape as the embedded templates. Exposed for tests.
func NewFromFS(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("view.New: glob: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("view.New: parse %s: %w", name, err)
		}
		pages[path.Base(name)] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page template into w.
// The data value is page-specific; every page can additionally read .Flash.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("view.Render: unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("view.Render: %s: %w", page, err)
	}
	return nil
}

// joinGenres renders a genre list as a comma-separated string.
func joinGenres(genres []string) string {
	out := ""
	for i, g := range genres {
		if i > 0 {
			out += ", "
		}
		out += g
	}
	return out
}

// Page carries the fields shared by every rendered page, currently just the
// transient status message. It is embedded in every page's data struct so
// templates can read .Flash uniformly.
type Page struct {
	Flash string
}

// HomeData is the payload for the home page.
type HomeData struct {
	Page
}

// VenueListData is the payload for the venues listing page.
type VenueListData struct {
	Page
	Venues []domain.Venue
}

// ArtistListData is the payload for the artists listing page.
type ArtistListData struct {
	Page
	Artists []domain.Artist
}

// ShowListData is the payload for the shows listing page.
type ShowListData struct {
	Page
	Shows []domain.ShowListing
}

// SearchData is the payload for the venue/artist search results pages.
type SearchData struct {
	Page
	SearchTerm string
	Results    domain.SearchResult
}

// VenueDetailData is the payload for a single venue page.
type VenueDetailData struct {
	Page
	Venue domain.Venue
}

// ArtistDetailData is the payload for a single artist page.
type ArtistDetailData struct {
	Page
	Artist domain.Artist
}

// VenueFormData is the payload for the new/edit venue form pages.
// Venue holds the current field values; for a create form they are empty.
type VenueFormData struct {
	Page
	Venue domain.Venue
}

// ArtistFormData is the payload for the new/edit artist form pages.
type ArtistFormData struct {
	Page
	Artist domain.Artist
}

// ShowFormData is the payload for the new show form page.
type ShowFormData struct {
	Page
	ArtistID  string
	VenueID   string
	StartTime string
}

// ErrorData is the payload for the 404 and 500 pages.
type ErrorData struct {
	Page
	Message string
}
