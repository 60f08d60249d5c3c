package repo

import (
	"errors"
	"fmt"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"gorm.io/gorm"
)

type ReviewRepo struct {
	DB *gorm.DB
}

// ReviewPatch carries partial updates; the author and artwork references
// are immutable and not patchable.
type ReviewPatch struct {
	Content *string
	Rating  *int
}

func validRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrInvalidArgument)
	}
	return nil
}

func (r *ReviewRepo) Create(content string, rating int, userID, artworkID uint) (reviews.Review, error) {
	if err := validRating(rating); err != nil {
		return reviews.Review{}, err
	}

	rv := reviews.Review{
		Content:   content,
		Rating:    rating,
		UserID:    userID,
		ArtworkID: artworkID,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := rowExists(tx, &users.User{}, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user not found: %w", apperr.ErrNotFound)
		}

		exists, err = rowExists(tx, &works.Artwork{}, artworkID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
		}

		return tx.Create(&rv).Error
	})
	if err != nil {
		return reviews.Review{}, err
	}
	return rv, nil
}

func (r *ReviewRepo) Get(id uint) (reviews.Review, error) {
	var rv reviews.Review
	if err := r.DB.First(&rv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reviews.Review{}, fmt.Errorf("review not found: %w", apperr.ErrNotFound)
		}
		return reviews.Review{}, err
	}
	return rv, nil
}

// ListForArtwork returns the artwork's reviews in primary-key order. An
// unknown artwork fails with NotFound rather than an empty list.
func (r *ReviewRepo) ListForArtwork(artworkID uint) ([]reviews.Review, error) {
	exists, err := rowExists(r.DB, &works.Artwork{}, artworkID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
	}

	var items []reviews.Review
	if err := r.DB.Where("artwork_id = ?", artworkID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReviewRepo) Update(id uint, patch ReviewPatch) (reviews.Review, error) {
	if patch.Rating != nil {
		if err := validRating(*patch.Rating); err != nil {
			return reviews.Review{}, err
		}
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var rv reviews.Review
		if err := tx.First(&rv, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("review not found: %w", apperr.ErrNotFound)
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.Content != nil {
			updates["content"] = *patch.Content
		}
		if patch.Rating != nil {
			updates["rating"] = *patch.Rating
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&reviews.Review{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return reviews.Review{}, err
	}
	return r.Get(id)
}

func (r *ReviewRepo) Delete(id uint) error {
	res := r.DB.Delete(&reviews.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review not found: %w", apperr.ErrNotFound)
	}
	return nil
}
