package works

import (
	"time"

	"artmarket-app/internal/domain/users"
)

type Artwork struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`

	ArtistID uint        `gorm:"not null;index" json:"artist_id"`
	Artist   *users.User `gorm:"foreignKey:ArtistID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
