package createBooking

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tattooBooker/internal/http-server/handlers/booking/createBooking/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"artist_id": 1,
	"name": "Marco",
	"email": "marco@example.com",
	"phone": "+39333123456",
	"datetime": "2025-06-02T10:00:00Z",
	"tattoo": "small dragon on the forearm"
}`

var slotTime = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		guardSetup     func(mock *mocks.ConflictChecker)
		saverSetup     func(mock *mocks.BookingSaver)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(false, nil)
			},
			saverSetup: func(m *mocks.BookingSaver) {
				m.On("CreateBooking", mock.AnythingOfType("*models.Booking")).
					Run(func(args mock.Arguments) {
						b := args.Get(0).(*models.Booking)
						b.ID = 1
						b.Reference = "e4d3b8a0-0000-0000-0000-000000000000"
					}).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			guardSetup:     func(m *mocks.ConflictChecker) {},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "failed to decode request",
		},
		{
			name:           "Missing required fields",
			requestBody:    `{"artist_id": 1}`,
			guardSetup:     func(m *mocks.ConflictChecker) {},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid datetime",
			requestBody: `{
				"artist_id": 1,
				"name": "Marco",
				"email": "marco@example.com",
				"phone": "+39333123456",
				"datetime": "tomorrow at noon",
				"tattoo": "small dragon"
			}`,
			guardSetup:     func(m *mocks.ConflictChecker) {},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "datetime must be a valid RFC 3339 timestamp",
		},
		{
			name: "Invalid palette",
			requestBody: `{
				"artist_id": 1,
				"name": "Marco",
				"email": "marco@example.com",
				"phone": "+39333123456",
				"datetime": "2025-06-02T10:00:00Z",
				"tattoo": "small dragon",
				"palette": "SEPIA"
			}`,
			guardSetup:     func(m *mocks.ConflictChecker) {},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Slot taken",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(true, nil)
			},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusConflict,
			expectedError:  "slot is not available for this artist",
		},
		{
			name:        "Slot taken by concurrent write",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(false, nil)
			},
			saverSetup: func(m *mocks.BookingSaver) {
				m.On("CreateBooking", mock.AnythingOfType("*models.Booking")).
					Return(storage.ErrSlotTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "slot is not available for this artist",
		},
		{
			name:        "Unknown artist",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(false, nil)
			},
			saverSetup: func(m *mocks.BookingSaver) {
				m.On("CreateBooking", mock.AnythingOfType("*models.Booking")).
					Return(storage.ErrArtistNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "artist not found",
		},
		{
			name:        "Guard error",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(false, errors.New("database error"))
			},
			saverSetup:     func(m *mocks.BookingSaver) {},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to create booking",
		},
		{
			name:        "Storage error",
			requestBody: validBody,
			guardSetup: func(m *mocks.ConflictChecker) {
				m.On("Check", 1, slotTime, 0).Return(false, nil)
			},
			saverSetup: func(m *mocks.BookingSaver) {
				m.On("CreateBooking", mock.AnythingOfType("*models.Booking")).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to create booking",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			guard := mocks.NewConflictChecker(t)
			tc.guardSetup(guard)

			saver := mocks.NewBookingSaver(t)
			tc.saverSetup(saver)

			notified := make(chan struct{}, 1)
			notifier := mocks.NewBookingNotifier(t)
			notifier.On("NotifyBookingCreated", mock.Anything, mock.AnythingOfType("*models.Booking")).
				Run(func(_ mock.Arguments) { notified <- struct{}{} }).
				Maybe()

			handler := New(logger, guard, saver, notifier)

			req, err := http.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedError)
			}

			if tc.expectedStatus == http.StatusCreated {
				assert.Contains(t, rr.Body.String(), `"status":"OK"`)
				assert.Contains(t, rr.Body.String(), `"reference":"e4d3b8a0-0000-0000-0000-000000000000"`)
				assert.Contains(t, rr.Body.String(), `"status":"New"`)
				assert.Contains(t, rr.Body.String(), `"palette":"COLORI"`)

				select {
				case <-notified:
				case <-time.After(time.Second):
					t.Fatal("notification was not sent")
				}
			}
		})
	}
}
