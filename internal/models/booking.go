package models

import "time"

// Booking statuses as shown in the admin triage view.
const (
	StatusNew       = "New"
	StatusConfirmed = "Confirmed"
	StatusDone      = "Done"
)

// Palette values for the requested tattoo.
const (
	PaletteBlackAndWhite = "BIANCO_NERO"
	PaletteColor         = "COLORI"
)

type Booking struct {
	ID        int            `json:"id"`
	Reference string         `json:"reference"`
	ArtistID  int            `json:"artist_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Datetime  time.Time      `json:"datetime"`
	Tattoo    string         `json:"tattoo"`
	SkinTone  string         `json:"skin_tone,omitempty"`
	Palette   string         `json:"palette"`
	BodyImage string         `json:"body_image,omitempty"`
	RefImages []string       `json:"reference_images"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Artist    *ArtistSummary `json:"artist,omitempty"`
}

// BookingUpdate carries a partial update for an existing booking.
// Nil fields are left unchanged.
type BookingUpdate struct {
	ArtistID  *int       `json:"artist_id,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Datetime  *time.Time `json:"datetime,omitempty"`
	Tattoo    *string    `json:"tattoo,omitempty"`
	SkinTone  *string    `json:"skin_tone,omitempty"`
	Palette   *string    `json:"palette,omitempty"`
	BodyImage *string    `json:"body_image,omitempty"`
	RefImages []string   `json:"reference_images,omitempty"`
	Status    *string    `json:"status,omitempty"`
}
