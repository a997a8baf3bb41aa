package getWorks

import (
	"log/slog"
	"net/http"
	"strconv"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"

	"github.com/go-chi/render"
)

const defaultTake = 20

type WorksResponse struct {
	response.Response
	Works []models.Work `json:"works"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WorkLister
type WorkLister interface {
	GetWorks(artistID, limit int) ([]models.Work, error)
}

// New serves the portfolio feed. Without an artistId filter it returns works
// of all artists, newest first.
func New(log *slog.Logger, lister WorkLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work.getWorks.New"

		log = log.With(slog.String("op", op))

		artistID := 0
		if raw := r.URL.Query().Get("artistId"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				log.Error("invalid artistId parameter")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("artistId must be a positive integer"))
				return
			}
			artistID = v
		}

		take := defaultTake
		if raw := r.URL.Query().Get("take"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v <= 0 {
				log.Error("invalid take parameter")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("take must be a positive integer"))
				return
			}
			take = v
		}

		works, err := lister.GetWorks(artistID, take)
		if err != nil {
			log.Error("failed to get works", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get works"))
			return
		}

		if works == nil {
			works = []models.Work{}
		}

		log.Info("works listed",
			slog.Int("artist_id", artistID),
			slog.Int("count", len(works)),
		)

		render.JSON(w, r, WorksResponse{
			Response: response.OK(),
			Works:    works,
		})
	}
}
