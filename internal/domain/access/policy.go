// Package access holds the authorization decisions. Every function is a
// pure check over already-loaded rows; persistence stays in the callers.
package access

import (
	"fmt"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"
)

// CanMutateArtwork allows updates and deletes only for the owning artist.
func CanMutateArtwork(userID uint, a works.Artwork) error {
	if a.ArtistID != userID {
		return fmt.Errorf("you do not have permission to modify this artwork: %w", apperr.ErrForbidden)
	}
	return nil
}

// RequireArtist gates artwork creation on the artist flag.
func RequireArtist(u users.User) error {
	if !u.IsArtist {
		return fmt.Errorf("only artists can list artworks: %w", apperr.ErrForbidden)
	}
	return nil
}

// CanMutateReview allows updates and deletes only for the review's author.
func CanMutateReview(userID uint, r reviews.Review) error {
	if r.UserID != userID {
		return fmt.Errorf("you do not have permission to modify this review: %w", apperr.ErrForbidden)
	}
	return nil
}
