package getUsers

import (
	"errors"
	"log/slog"
	"net/http"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/go-chi/render"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

type UserResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetAllUsers() ([]models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// New lists users, or looks up a single one when an email query is given.
func New(log *slog.Logger, getter UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getUsers.New"

		log = log.With(slog.String("op", op))

		if email := r.URL.Query().Get("email"); email != "" {
			user, err := getter.GetUserByEmail(email)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					log.Info("user not found", slog.String("email", email))
					render.Status(r, http.StatusNotFound)
					render.JSON(w, r, response.Error("user not found"))
					return
				}

				log.Error("failed to get user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get user"))
				return
			}

			log.Info("user found", slog.Int("user_id", user.ID))

			render.JSON(w, r, UserResponse{
				Response: response.OK(),
				User:     user,
			})
			return
		}

		users, err := getter.GetAllUsers()
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		if users == nil {
			users = []models.User{}
		}

		log.Info("users listed", slog.Int("count", len(users)))

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    users,
		})
	}
}
