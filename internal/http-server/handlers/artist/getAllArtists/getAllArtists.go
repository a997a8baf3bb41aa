package getAllArtists

import (
	"log/slog"
	"net/http"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"

	"github.com/go-chi/render"
)

type ArtistsResponse struct {
	response.Response
	Artists []models.Artist `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistLister
type ArtistLister interface {
	GetAllArtists() ([]models.Artist, error)
}

func New(log *slog.Logger, lister ArtistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getAllArtists.New"

		log = log.With(slog.String("op", op))

		artists, err := lister.GetAllArtists()
		if err != nil {
			log.Error("failed to get artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artists"))
			return
		}

		if artists == nil {
			artists = []models.Artist{}
		}

		log.Info("artists listed", slog.Int("count", len(artists)))

		render.JSON(w, r, ArtistsResponse{
			Response: response.OK(),
			Artists:  artists,
		})
	}
}
