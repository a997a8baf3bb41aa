package getWorks

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tattooBooker/internal/http-server/handlers/work/getWorks/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWorksHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.WorkLister)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Default take",
			url:  "/works",
			mockSetup: func(m *mocks.WorkLister) {
				m.On("GetWorks", 0, 20).Return([]models.Work{
					{ID: 3, ArtistID: 1, Title: "Dragon sleeve", MediaURL: "/works/3.jpg"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"title":"Dragon sleeve"`)
			},
		},
		{
			name: "Filtered by artist with take",
			url:  "/works?artistId=2&take=5",
			mockSetup: func(m *mocks.WorkLister) {
				m.On("GetWorks", 2, 5).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"works":[]`)
			},
		},
		{
			name:           "Invalid artistId",
			url:            "/works?artistId=zero",
			mockSetup:      func(m *mocks.WorkLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "artistId must be a positive integer")
			},
		},
		{
			name:           "Invalid take",
			url:            "/works?take=-3",
			mockSetup:      func(m *mocks.WorkLister) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "take must be a positive integer")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewWorkLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
