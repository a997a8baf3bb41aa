package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tattooBooker/internal/lib/api/response"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/models"
	"tattooBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type UpdateRequest struct {
	ArtistID        *int     `json:"artist_id" validate:"omitempty,gt=0"`
	Name            *string  `json:"name" validate:"omitempty,min=1"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Phone           *string  `json:"phone" validate:"omitempty,min=6,max=32"`
	Datetime        *string  `json:"datetime" validate:"omitempty"`
	Tattoo          *string  `json:"tattoo" validate:"omitempty,min=1"`
	SkinTone        *string  `json:"skin_tone"`
	Palette         *string  `json:"palette" validate:"omitempty,oneof=BIANCO_NERO COLORI"`
	Status          *string  `json:"status" validate:"omitempty,oneof=New Confirmed Done"`
	BodyImage       *string  `json:"body_image"`
	ReferenceImages []string `json:"reference_images" validate:"omitempty,max=5"`
}

type UpdateResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	GetBooking(id int) (*models.Booking, error)
	UpdateBooking(id int, upd *models.BookingUpdate) (*models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConflictChecker
type ConflictChecker interface {
	Check(artistID int, at time.Time, excludeID int) (bool, error)
}

func New(log *slog.Logger, guard ConflictChecker, updater BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			log.Error("invalid booking id format")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int("booking_id", id))

		var req UpdateRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		var when *time.Time
		if req.Datetime != nil {
			parsed, err := time.Parse(time.RFC3339, *req.Datetime)
			if err != nil {
				log.Error("invalid datetime format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("datetime must be a valid RFC 3339 timestamp"))
				return
			}
			utc := parsed.UTC()
			when = &utc
		}

		// moving the booking in time or between artists needs a fresh
		// conflict check against the target slot, excluding the booking itself
		if req.ArtistID != nil || when != nil {
			current, err := updater.GetBooking(id)
			if err != nil {
				if errors.Is(err, storage.ErrBookingNotFound) {
					log.Info("booking not found")
					render.Status(r, http.StatusNotFound)
					render.JSON(w, r, response.Error("booking not found"))
					return
				}
				log.Error("failed to get booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
				return
			}

			checkArtist := current.ArtistID
			if req.ArtistID != nil {
				checkArtist = *req.ArtistID
			}

			checkWhen := current.Datetime
			if when != nil {
				checkWhen = *when
			}

			conflict, err := guard.Check(checkArtist, checkWhen, id)
			if err != nil {
				log.Error("failed to check slot conflict", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
				return
			}
			if conflict {
				log.Info("slot already taken")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot is not available for this artist"))
				return
			}
		}

		upd := &models.BookingUpdate{
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

		updated, err := updater.UpdateBooking(id, upd)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			case errors.Is(err, storage.ErrSlotTaken):
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
				log.Error("failed to update booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update booking"))
				return
			}
		}

		log.Info("booking updated")

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			Booking:  updated,
		})
	}
}
