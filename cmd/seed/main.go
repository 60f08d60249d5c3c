// Seeds the database with demo users, artworks, reviews and purchases.
// Drops the existing tables first; development use only.
package main

import (
	"log"
	"time"

	"artmarket-app/config"
	"artmarket-app/database"
	"artmarket-app/internal/auth"
	"artmarket-app/internal/domain/purchases"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()

	db, err := database.Open(config.DB_URL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := db.Migrator().DropTable(
		&purchases.Purchase{},
		&reviews.Review{},
		&works.Artwork{},
		&users.User{},
	); err != nil {
		log.Fatal("Failed to drop tables: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	if err := seed(db); err != nil {
		log.Fatal("Failed to seed: ", err)
	}

	log.Println("Database seeded successfully")
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}
	return hash
}

func strPtr(s string) *string { return &s }

func seed(db *gorm.DB) error {
	seedUsers := []users.User{
		{Name: "artist1", Email: "artist1@example.com", PasswordHash: mustHash("password1"), IsArtist: true},
		{Name: "artist2", Email: "artist2@example.com", PasswordHash: mustHash("password2"), IsArtist: true},
		{Name: "buyer1", Email: "buyer1@example.com", PasswordHash: mustHash("password3")},
		{Name: "buyer2", Email: "buyer2@example.com", PasswordHash: mustHash("password4")},
	}
	if err := db.Create(&seedUsers).Error; err != nil {
		return err
	}

	seedArtworks := []works.Artwork{
		{Title: "Sunset Landscape", Description: strPtr("A beautiful sunset"), Price: 200.00, ArtistID: seedUsers[0].ID},
		{Title: "Abstract Colors", Description: strPtr("A modern abstract painting"), Price: 350.00, ArtistID: seedUsers[0].ID},
		{Title: "Portrait of a Woman", Description: strPtr("An oil portrait"), Price: 500.00, ArtistID: seedUsers[1].ID},
		{Title: "Cityscape", Description: strPtr("A vibrant city skyline"), Price: 275.00, ArtistID: seedUsers[1].ID},
	}
	if err := db.Create(&seedArtworks).Error; err != nil {
		return err
	}

	seedReviews := []reviews.Review{
		{Content: "Amazing artwork! Looks even better in person.", Rating: 5, UserID: seedUsers[2].ID, ArtworkID: seedArtworks[0].ID},
		{Content: "Great colors, but I expected a larger canvas.", Rating: 4, UserID: seedUsers[2].ID, ArtworkID: seedArtworks[1].ID},
		{Content: "Love it! Perfect addition to my living room.", Rating: 5, UserID: seedUsers[3].ID, ArtworkID: seedArtworks[2].ID},
		{Content: "The detail in this piece is incredible.", Rating: 5, UserID: seedUsers[3].ID, ArtworkID: seedArtworks[3].ID},
	}
	if err := db.Create(&seedReviews).Error; err != nil {
		return err
	}

	now := time.Now()
	seedPurchases := []purchases.Purchase{
		{UserID: seedUsers[2].ID, ArtworkID: seedArtworks[0].ID, PurchaseDate: now},
		{UserID: seedUsers[2].ID, ArtworkID: seedArtworks[1].ID, PurchaseDate: now},
		{UserID: seedUsers[3].ID, ArtworkID: seedArtworks[2].ID, PurchaseDate: now},
		{UserID: seedUsers[3].ID, ArtworkID: seedArtworks[3].ID, PurchaseDate: now},
	}
	return db.Create(&seedPurchases).Error
}
