package getAllBookings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tattooBooker/internal/http-server/handlers/booking/getAllBookings/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bookings := []models.Booking{
		{
			ID:       1,
			ArtistID: 1,
			Name:     "Marco",
			Datetime: time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC),
			Status:   models.StatusNew,
			Artist:   &models.ArtistSummary{ID: 1, Name: "CRISTIANO"},
		},
		{
			ID:       2,
			ArtistID: 2,
			Name:     "Giulia",
			Datetime: time.Date(2025, time.June, 2, 11, 0, 0, 0, time.UTC),
			Status:   models.StatusConfirmed,
			Artist:   &models.ArtistSummary{ID: 2, Name: "SDRAINS"},
		},
	}

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewBookingLister(t)
		mockLister.On("GetAllBookings").Return(bookings, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/bookings", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"OK"`)
		assert.Contains(t, rr.Body.String(), `"name":"Marco"`)
		assert.Contains(t, rr.Body.String(), `"name":"CRISTIANO"`)
	})

	t.Run("Empty list", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewBookingLister(t)
		mockLister.On("GetAllBookings").Return(nil, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/bookings", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"bookings":[]`)
	})

	t.Run("Storage error", func(t *testing.T) {
		t.Parallel()

		mockLister := mocks.NewBookingLister(t)
		mockLister.On("GetAllBookings").Return(nil, errors.New("database error"))

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/bookings", nil)
		require.NoError(t, err)

		New(logger, mockLister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, rr.Body.String())
	})
}
