package getUsers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tattooBooker/internal/http-server/handlers/user/getUsers/mocks"
	"tattooBooker/internal/lib/logger/handlers/slogdiscard"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("List all", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewUserGetter(t)
		mockGetter.On("GetAllUsers").Return([]models.User{
			{ID: 2, Name: "Giulia", Email: "giulia@example.com"},
			{ID: 1, Name: "Marco", Email: "marco@example.com"},
		}, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/users", nil)
		require.NoError(t, err)

		New(logger, mockGetter).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"email":"giulia@example.com"`)
		assert.Contains(t, rr.Body.String(), `"email":"marco@example.com"`)
	})

	t.Run("Lookup by email", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewUserGetter(t)
		mockGetter.On("GetUserByEmail", "marco@example.com").
			Return(&models.User{ID: 1, Name: "Marco", Email: "marco@example.com"}, nil)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/users?email=marco@example.com", nil)
		require.NoError(t, err)

		New(logger, mockGetter).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Marco"`)
	})

	t.Run("Lookup miss", func(t *testing.T) {
		t.Parallel()

		mockGetter := mocks.NewUserGetter(t)
		mockGetter.On("GetUserByEmail", "nobody@example.com").
			Return(nil, storage.ErrUserNotFound)

		rr := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, "/users?email=nobody@example.com", nil)
		require.NoError(t, err)

		New(logger, mockGetter).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"user not found"}`, rr.Body.String())
	})
}
