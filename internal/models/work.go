package models

// Work is a single portfolio entry shown on an artist's showcase.
type Work struct {
	ID       int    `json:"id"`
	ArtistID int    `json:"artist_id"`
	Title    string `json:"title"`
	MediaURL string `json:"media_url"`
}
