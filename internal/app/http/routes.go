package routes

import (
	authapi "artmarket-app/internal/api/auth"
	purchasesapi "artmarket-app/internal/api/purchases"
	reviewsapi "artmarket-app/internal/api/reviews"
	usersapi "artmarket-app/internal/api/users"
	worksapi "artmarket-app/internal/api/works"
	"artmarket-app/internal/app/http/middleware"
	"artmarket-app/internal/repo"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func init() {
	// Request schemas fail closed: a JSON body carrying fields a handler
	// does not declare is rejected at bind time.
	gin.EnableJsonDecoderDisallowUnknownFields()
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	repos := repo.New(db)

	authHandler := authapi.Handler{Users: repos.Users}
	userHandler := usersapi.Handler{Users: repos.Users}
	workHandler := worksapi.Handler{Users: repos.Users, Artworks: repos.Artworks}
	reviewHandler := reviewsapi.Handler{Reviews: repos.Reviews}
	purchaseHandler := purchasesapi.Handler{Purchases: repos.Purchases}

	r.Use(middleware.RateLimit(rate.Limit(20), 40))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())

	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)
	public.GET("/artworks", workHandler.ListArtworks)
	public.GET("/artworks/:id", workHandler.GetArtwork)
	public.GET("/artworks/:id/reviews", reviewHandler.ListReviews)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.SanitizeInput(), middleware.AuthMiddleware())

	auth.GET("/me", userHandler.GetCurrentUser)

	auth.POST("/artworks", workHandler.CreateArtwork)
	auth.PUT("/artworks/:id", workHandler.UpdateArtwork)
	auth.DELETE("/artworks/:id", workHandler.DeleteArtwork)

	auth.POST("/artworks/:id/reviews", reviewHandler.CreateReview)
	auth.PUT("/reviews/:id", reviewHandler.UpdateReview)
	auth.DELETE("/reviews/:id", reviewHandler.DeleteReview)

	auth.POST("/artworks/:id/purchase", purchaseHandler.PurchaseArtwork)
	auth.GET("/purchases", purchaseHandler.ListPurchases)
}
