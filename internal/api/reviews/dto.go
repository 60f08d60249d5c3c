package reviews

type CreateReviewRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  *int   `json:"rating" binding:"required"`
}

type UpdateReviewRequest struct {
	Content *string `json:"content"`
	Rating  *int    `json:"rating"`
}
