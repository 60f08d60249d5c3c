package works

import (
	"net/http"
	"strconv"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/access"
	"artmarket-app/internal/repo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users    *repo.UserRepo
	Artworks *repo.ArtworkRepo
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid artwork id"})
		return 0, false
	}
	return uint(id), true
}

// GET /artworks
func (h Handler) ListArtworks(c *gin.Context) {
	items, err := h.Artworks.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	out := make([]ArtworkDTO, 0, len(items))
	for _, a := range items {
		out = append(out, toArtworkDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// GET /artworks/:id
func (h Handler) GetArtwork(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.Artworks.Get(id)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toArtworkDTO(a))
}

// POST /artworks (artist only)
func (h Handler) CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := access.RequireArtist(user); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	a, err := h.Artworks.Create(req.Title, req.Description, *req.Price, user.ID)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toArtworkDTO(a))
}

// PUT /artworks/:id (owner only)
func (h Handler) UpdateArtwork(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	a, err := h.Artworks.Get(id)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	if err := access.CanMutateArtwork(userID, a); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Artworks.Update(id, repo.ArtworkPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toArtworkDTO(updated))
}

// DELETE /artworks/:id (owner only)
func (h Handler) DeleteArtwork(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	a, err := h.Artworks.Get(id)
	if err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	if err := access.CanMutateArtwork(userID, a); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	if err := h.Artworks.Delete(id); err != nil {
		c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
}
