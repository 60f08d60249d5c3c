package purchases

import (
	"net/http"
	"strconv"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Purchases *repo.PurchaseRepo
}

type PurchaseRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// POST /artworks/:id/purchase
func (h Handler) PurchaseArtwork(c *gin.Context) {
	artworkID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork id"})
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	p, err := h.Purchases.Create(userID, uint(artworkID), *req.Amount)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Artwork purchased successfully",
		"purchase": p,
	})
}

// GET /purchases
func (h Handler) ListPurchases(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	items, err := h.Purchases.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load purchases"})
		return
	}

	c.JSON(http.StatusOK, items)
}
