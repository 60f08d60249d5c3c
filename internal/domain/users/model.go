package users

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsArtist     bool   `gorm:"not null;default:false" json:"is_artist"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
