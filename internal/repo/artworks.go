package repo

import (
	"errors"
	"fmt"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/purchases"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"gorm.io/gorm"
)

type ArtworkRepo struct {
	DB *gorm.DB
}

// ArtworkPatch carries partial updates; nil fields keep their prior value.
type ArtworkPatch struct {
	Title       *string
	Description *string
	Price       *float64
}

func (r *ArtworkRepo) Create(title string, description *string, price float64, artistID uint) (works.Artwork, error) {
	if price < 0 {
		return works.Artwork{}, fmt.Errorf("price must not be negative: %w", apperr.ErrInvalidArgument)
	}

	a := works.Artwork{
		Title:       title,
		Description: description,
		Price:       price,
		ArtistID:    artistID,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := rowExists(tx, &users.User{}, artistID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("artist not found: %w", apperr.ErrNotFound)
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return works.Artwork{}, err
	}
	return r.Get(a.ID)
}

func (r *ArtworkRepo) Get(id uint) (works.Artwork, error) {
	var a works.Artwork
	if err := r.DB.Preload("Artist").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return works.Artwork{}, fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
		}
		return works.Artwork{}, err
	}
	return a, nil
}

// List returns all artworks in primary-key order.
func (r *ArtworkRepo) List() ([]works.Artwork, error) {
	var items []works.Artwork
	if err := r.DB.Preload("Artist").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a partial patch and returns the fresh row. Missing rows
// fail with NotFound; a negative price fails with InvalidArgument before
// anything is written.
func (r *ArtworkRepo) Update(id uint, patch ArtworkPatch) (works.Artwork, error) {
	if patch.Price != nil && *patch.Price < 0 {
		return works.Artwork{}, fmt.Errorf("price must not be negative: %w", apperr.ErrInvalidArgument)
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var a works.Artwork
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&works.Artwork{}).Where("id = ?", id).Updates(updates).Error
	})
	if err != nil {
		return works.Artwork{}, err
	}
	return r.Get(id)
}

// Delete removes an artwork and cascades its reviews. Artworks referenced
// by purchase records are never deleted; those rows are receipts.
func (r *ArtworkRepo) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := rowExists(tx, &works.Artwork{}, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
		}

		var purchased int64
		if err := tx.Model(&purchases.Purchase{}).Where("artwork_id = ?", id).Count(&purchased).Error; err != nil {
			return err
		}
		if purchased > 0 {
			return fmt.Errorf("artwork has purchase records: %w", apperr.ErrConflict)
		}

		if err := tx.Where("artwork_id = ?", id).Delete(&reviews.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&works.Artwork{}, "id = ?", id).Error
	})
}
