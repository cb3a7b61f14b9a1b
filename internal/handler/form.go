package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"gigbook/internal/domain"
	"gigbook/internal/view"
)

// Typed form binding: each endpoint reads its fields explicitly instead of
// constructing records from arbitrary submitted keys.

// venueForm is the field set of the venue create/edit forms.
type venueForm struct {
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	Genres       []string
	FacebookLink string
}

// bindVenueForm parses the request body into a venueForm.
func bindVenueForm(r *http.Request) (venueForm, error) {
	if err := r.ParseForm(); err != nil {
		return venueForm{}, fmt.Errorf("handler.bindVenueForm: %w", err)
	}
	return venueForm{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		City:         strings.TrimSpace(r.PostFormValue("city")),
		State:        strings.TrimSpace(r.PostFormValue("state")),
		Address:      strings.TrimSpace(r.PostFormValue("address")),
		Phone:        strings.TrimSpace(r.PostFormValue("phone")),
		Genres:       splitGenres(r.PostForm["genres"]),
		FacebookLink: strings.TrimSpace(r.PostFormValue("facebook_link")),
	}, nil
}

// toVenue builds the domain record carried to the service layer.
// The ID is zero for creates; updates set it from the URL.
func (f venueForm) toVenue(id int64) domain.Venue {
	return domain.Venue{
		ID:           id,
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Address:      f.Address,
		Phone:        f.Phone,
		Genres:       f.Genres,
		FacebookLink: f.FacebookLink,
	}
}

// artistForm is the field set of the artist create/edit forms.
type artistForm struct {
	Name         string
	City         string
	State        string
	Phone        string
	Genres       []string
	FacebookLink string
	ImageLink    string
}

// bindArtistForm parses the request body into an artistForm.
func bindArtistForm(r *http.Request) (artistForm, error) {
	if err := r.ParseForm(); err != nil {
		return artistForm{}, fmt.Errorf("handler.bindArtistForm: %w", err)
	}
	return artistForm{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		City:         strings.TrimSpace(r.PostFormValue("city")),
		State:        strings.TrimSpace(r.PostFormValue("state")),
		Phone:        strings.TrimSpace(r.PostFormValue("phone")),
		Genres:       splitGenres(r.PostForm["genres"]),
		FacebookLink: strings.TrimSpace(r.PostFormValue("facebook_link")),
		ImageLink:    strings.TrimSpace(r.PostFormValue("image_link")),
	}, nil
}

func (f artistForm) toArtist(id int64) domain.Artist {
	return domain.Artist{
		ID:           id,
		Name:         f.Name,
		City:         f.City,
		State:        f.State,
		Phone:        f.Phone,
		Genres:       f.Genres,
		FacebookLink: f.FacebookLink,
		ImageLink:    f.ImageLink,
	}
}

// showForm is the field set of the show booking form.
type showForm struct {
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}

// errBadShowForm reports a show form whose ids or start time do not parse.
var errBadShowForm = errors.New("artist id, venue id, and a valid start time are required")

// bindShowForm parses and validates the show booking fields.
// All three fields are required and must parse; a failure here never reaches
// the service layer.
func bindShowForm(r *http.Request) (showForm, error) {
	if err := r.ParseForm(); err != nil {
		return showForm{}, fmt.Errorf("handler.bindShowForm: %w", err)
	}

	artistID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("artist_id")), 10, 64)
	if err != nil {
		return showForm{}, errBadShowForm
	}
	venueID, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("venue_id")), 10, 64)
	if err != nil {
		return showForm{}, errBadShowForm
	}
	startTime, err := view.ParseTimestamp(strings.TrimSpace(r.PostFormValue("start_time")))
	if err != nil {
		return showForm{}, errBadShowForm
	}

	return showForm{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}

// splitGenres flattens submitted genre values. The form sends one
// comma-separated text field, but repeated fields (e.g. from a multi-select)
// are accepted too.
func splitGenres(values []string) []string {
	var out []string
	for _, value := range values {
		for _, g := range strings.Split(value, ",") {
			if t := strings.TrimSpace(g); t != "" {
				out = append(out, t)
			}
		}
	}
	return out
}

// idParam parses the {id} URL parameter as an integer primary key.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("handler.idParam: %w", err)
	}
	return id, nil
}
