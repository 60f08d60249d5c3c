package works

import (
	"time"

	"artmarket-app/internal/domain/works"
)

type CreateArtworkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type ArtworkDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Artist      string    `json:"artist"`
	ArtistID    uint      `json:"artist_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toArtworkDTO(a works.Artwork) ArtworkDTO {
	dto := ArtworkDTO{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Price:       a.Price,
		ArtistID:    a.ArtistID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Artist != nil {
		dto.Artist = a.Artist.Name
	}
	return dto
}
