package repo

import (
	"errors"
	"fmt"
	"time"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/purchases"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"gorm.io/gorm"
)

type PurchaseRepo struct {
	DB *gorm.DB
}

// Create records a completed purchase, timestamped at call time. The
// submitted amount must cover the listed price; this is a sanity check on
// the caller, not payment processing.
func (r *PurchaseRepo) Create(userID, artworkID uint, amount float64) (purchases.Purchase, error) {
	p := purchases.Purchase{
		UserID:       userID,
		ArtworkID:    artworkID,
		PurchaseDate: time.Now(),
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := rowExists(tx, &users.User{}, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("user not found: %w", apperr.ErrNotFound)
		}

		var a works.Artwork
		if err := tx.First(&a, "id = ?", artworkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("artwork not found: %w", apperr.ErrNotFound)
			}
			return err
		}

		if amount < a.Price {
			return fmt.Errorf("insufficient payment: %w", apperr.ErrInvalidArgument)
		}

		return tx.Create(&p).Error
	})
	if err != nil {
		return purchases.Purchase{}, err
	}
	return p, nil
}

// ListForUser returns the user's purchases in primary-key order.
func (r *PurchaseRepo) ListForUser(userID uint) ([]purchases.Purchase, error) {
	var items []purchases.Purchase
	if err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
