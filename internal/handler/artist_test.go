package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigbook/internal/domain"
)

func artistPage(id int64) domain.Artist {
	return domain.Artist{
		ID:           id,
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		FacebookLink: "https://www.facebook.com/GunsNPetals",
		ImageLink:    "https://images.example/gnp.jpg",
	}
}

func TestListArtists_200(t *testing.T) {
	artists := &mockArtistServicer{
		list: func(_ context.Context) ([]domain.Artist, error) {
			return []domain.Artist{artistPage(1)}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/artists", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Guns N Petals")
}

func TestSearchArtists_RendersCount(t *testing.T) {
	artists := &mockArtistServicer{
		search: func(_ context.Context, term string) (domain.SearchResult, error) {
			assert.Equal(t, "band", term)
			return domain.SearchResult{
				Count: 1,
				Data:  []domain.SearchHit{{ID: 3, Name: "The Wild Sax Band"}},
			}, nil
		},
	}

	req := formRequest("/artists/search", url.Values{"search_term": {"band"}})
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "The Wild Sax Band")
	assert.Contains(t, rec.Body.String(), ": 1")
}

func TestShowArtist_404_WhenMissing(t *testing.T) {
	artists := &mockArtistServicer{
		getByID: func(_ context.Context, _ int64) (domain.Artist, error) {
			return domain.Artist{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/artists/999", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateArtist_Success_FlashAndRedirect(t *testing.T) {
	var captured domain.Artist
	artists := &mockArtistServicer{
		create: func(_ context.Context, artist domain.Artist) (domain.Artist, error) {
			captured = artist
			artist.ID = 20
			return artist, nil
		},
	}

	form := url.Values{
		"name":       {"Guns N Petals"},
		"city":       {"San Francisco"},
		"genres":     {"Rock n Roll"},
		"image_link": {"https://images.example/gnp.jpg"},
	}
	req := formRequest("/artists/create", form)
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "Artist Guns N Petals was successfully listed!", flashMessage(t, rec))
	assert.Equal(t, "https://images.example/gnp.jpg", captured.ImageLink)
}

func TestCreateArtist_Failure_FlashNamesArtist(t *testing.T) {
	artists := &mockArtistServicer{
		create: func(_ context.Context, _ domain.Artist) (domain.Artist, error) {
			return domain.Artist{}, domain.ErrValidation
		},
	}

	req := formRequest("/artists/create", url.Values{"name": {"No Luck"}})
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "An error occurred. Artist No Luck could not be listed.", flashMessage(t, rec))
}

func TestUpdateArtist_RedirectsToDetail(t *testing.T) {
	var captured domain.Artist
	artists := &mockArtistServicer{
		update: func(_ context.Context, artist domain.Artist) (domain.Artist, error) {
			captured = artist
			return artist, nil
		},
	}

	req := formRequest("/artists/4/edit", url.Values{"name": {"Matt Quevedo"}})
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists/4", rec.Header().Get("Location"))
	assert.Equal(t, int64(4), captured.ID)
	assert.Equal(t, "Artist Matt Quevedo was successfully updated!", flashMessage(t, rec))
}

func TestEditArtistForm_PopulatedWithCurrentValues(t *testing.T) {
	artists := &mockArtistServicer{
		getByID: func(_ context.Context, id int64) (domain.Artist, error) {
			return artistPage(id), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/artists/4/edit", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, artists, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Guns N Petals"`)
}

// The artist surface has no delete endpoint.
func TestDeleteArtist_RouteDoesNotExist(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/artists/4/delete", nil)
	rec := httptest.NewRecorder()
	newTestRouter(t, nil, &mockArtistServicer{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
