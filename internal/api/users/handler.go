package users

import (
	"net/http"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users *repo.UserRepo
}

func (h Handler) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsArtist:  user.IsArtist,
		CreatedAt: user.CreatedAt,
	})
}
