package users

import "time"

type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsArtist  bool      `json:"is_artist"`
	CreatedAt time.Time `json:"created_at"`
}
