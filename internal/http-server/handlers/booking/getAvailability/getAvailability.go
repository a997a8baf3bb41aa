package getAvailability

import (
	"log/slog"
	"net/http"
	"strconv"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type AvailabilityResponse struct {
	response.Response
	Days map[string][]string `json:"days"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityProvider
type AvailabilityProvider interface {
	MonthByDay(artistID, year, month int) (map[string][]string, error)
}

func New(log *slog.Logger, provider AvailabilityProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAvailability.New"

		log = log.With(slog.String("op", op))

		artistID, ok := positiveIntParam(r, "artistId")
		if !ok {
			log.Error("invalid artistId parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("artistId must be a positive integer"))
			return
		}

		year, ok := positiveIntParam(r, "year")
		if !ok {
			log.Error("invalid year parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("year must be a positive integer"))
			return
		}

		month, ok := positiveIntParam(r, "month")
		if !ok || month > 12 {
			log.Error("invalid month parameter")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("month must be an integer between 1 and 12"))
			return
		}

		log = log.With(
			slog.Int("artist_id", artistID),
			slog.Int("year", year),
			slog.Int("month", month),
		)

		days, err := provider.MonthByDay(artistID, year, month)
		if err != nil {
			log.Error("failed to compute availability", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to compute availability"))
			return
		}

		log.Info("availability computed", slog.Int("days_with_slots", len(days)))

		render.JSON(w, r, AvailabilityResponse{
			Response: response.OK(),
			Days:     days,
		})
	}
}

func positiveIntParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}
