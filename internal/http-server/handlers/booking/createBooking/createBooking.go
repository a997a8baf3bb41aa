package createBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	ArtistID        int      `json:"artist_id" validate:"required,gt=0"`
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,min=6,max=32"`
	Datetime        string   `json:"datetime" validate:"required"`
	Tattoo          string   `json:"tattoo" validate:"required"`
	SkinTone        string   `json:"skin_tone" validate:"omitempty"`
	Palette         string   `json:"palette" validate:"omitempty,oneof=BIANCO_NERO COLORI"`
	Status          string   `json:"status" validate:"omitempty,oneof=New Confirmed Done"`
	BodyImage       string   `json:"body_image"`
	ReferenceImages []string `json:"reference_images" validate:"omitempty,max=5"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConflictChecker
type ConflictChecker interface {
	Check(artistID int, at time.Time, excludeID int) (bool, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	CreateBooking(b *models.Booking) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingNotifier
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *models.Booking)
}

func New(log *slog.Logger, guard ConflictChecker, saver BookingSaver, notifier BookingNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		when, err := time.Parse(time.RFC3339, req.Datetime)
		if err != nil {
			log.Error("invalid datetime format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("datetime must be a valid RFC 3339 timestamp"))
			return
		}
		when = when.UTC()

		log = log.With(
			slog.Int("artist_id", req.ArtistID),
			slog.Time("datetime", when),
		)

		conflict, err := guard.Check(req.ArtistID, when, 0)
		if err != nil {
			log.Error("failed to check slot conflict", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}
		if conflict {
			log.Info("slot already taken")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("slot is not available for this artist"))
			return
		}

		booking := &models.Booking{
			ArtistID:  req.ArtistID,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Datetime:  when,
			Tattoo:    req.Tattoo,
			SkinTone:  req.SkinTone,
			Palette:   req.Palette,
			BodyImage: req.BodyImage,
			RefImages: req.ReferenceImages,
			Status:    req.Status,
		}
		if booking.Palette == "" {
			booking.Palette = models.PaletteColor
		}
		if booking.Status == "" {
			booking.Status = models.StatusNew
		}
		if booking.RefImages == nil {
			booking.RefImages = []string{}
		}

		err = saver.CreateBooking(booking)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSlotTaken):
				// the guard passed but a concurrent write got there first;
				// the unique constraint settles it
				log.Info("slot taken by concurrent booking")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot is not available for this artist"))
				return
			case errors.Is(err, storage.ErrArtistNotFound):
				log.Error("artist not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("artist not found"))
				return
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
				return
			}
		}

		log.Info("booking created",
			slog.Int("booking_id", booking.ID),
			slog.String("reference", booking.Reference),
		)

		go notifier.NotifyBookingCreated(context.WithoutCancel(r.Context()), booking)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
