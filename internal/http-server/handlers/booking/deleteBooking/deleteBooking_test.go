package deleteBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tattooBooker/internal/http-server/handlers/booking/deleteBooking/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(mock *mocks.BookingDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "42",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 42).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Not found",
			bookingID: "42",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 42).Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:           "Invalid id",
			bookingID:      "abc",
			mockSetup:      func(m *mocks.BookingDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:      "Storage error",
			bookingID: "42",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", 42).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			req, err := http.NewRequest(http.MethodDelete, "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
