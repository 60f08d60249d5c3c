package reviews

import "time"

// Review references one author and one artwork. Both foreign keys are fixed
// at creation; only content and rating may change afterwards.
type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	Rating  int    `gorm:"not null" json:"rating"`

	UserID    uint `gorm:"not null;index" json:"user_id"`
	ArtworkID uint `gorm:"not null;index" json:"artwork_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
