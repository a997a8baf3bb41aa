package models

type Artist struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
}

// ArtistSummary is the short artist projection embedded in booking listings.
type ArtistSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
