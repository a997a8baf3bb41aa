package getAllArtists

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tattooBooker/internal/http-server/handlers/artist/getAllArtists/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllArtistsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewArtistLister(t)
		mockLister.On("GetAllArtists").Return([]models.Artist{
			{ID: 1, Name: "CRISTIANO", Bio: "Blackwork and fine line."},
			{ID: 2, Name: "SDRAINS", Bio: "Realism and vibrant color."},
		}, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/artists", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"OK"`)
		assert.Contains(t, rr.Body.String(), `"name":"CRISTIANO"`)
		assert.Contains(t, rr.Body.String(), `"name":"SDRAINS"`)
	})

	t.Run("Empty roster", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewArtistLister(t)
		mockLister.On("GetAllArtists").Return(nil, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/artists", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","artists":[]}`, rr.Body.String())
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewArtistLister(t)
		mockLister.On("GetAllArtists").Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/artists", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get artists"}`, rr.Body.String())
	})
}
