package reviews

import (
	"net/http"
	"strconv"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/access"
	"artmarket-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Reviews *repo.ReviewRepo
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func pathID(c *gin.Context, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " id"})
		return 0, false
	}
	return uint(id), true
}

// POST /artworks/:id/reviews
func (h Handler) CreateReview(c *gin.Context) {
	artworkID, ok := pathID(c, "artwork")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	rv, err := h.Reviews.Create(req.Content, *req.Rating, userID, artworkID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rv)
}

// GET /artworks/:id/reviews
func (h Handler) ListReviews(c *gin.Context) {
	artworkID, ok := pathID(c, "artwork")
	if !ok {
		return
	}

	items, err := h.Reviews.ListForArtwork(artworkID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// PUT /reviews/:id (author only)
func (h Handler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "review")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	rv, err := h.Reviews.Get(id)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	if err := access.CanMutateReview(userID, rv); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Reviews.Update(id, repo.ReviewPatch{
		Content: req.Content,
		Rating:  req.Rating,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /reviews/:id (author only)
func (h Handler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "review")
	if !ok {
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	rv, err := h.Reviews.Get(id)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	if err := access.CanMutateReview(userID, rv); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	if err := h.Reviews.Delete(id); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
