package repo

import (
	"errors"
	"fmt"

	"artmarket-app/internal/apperr"
	"artmarket-app/internal/domain/users"

	"gorm.io/gorm"
)

type UserRepo struct {
	DB *gorm.DB
}

// Create registers a new user. A duplicate email fails with Conflict; the
// uniqueness check runs in the same transaction as the insert.
func (r *UserRepo) Create(name, email, passwordHash string, isArtist bool) (users.User, error) {
	user := users.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsArtist:     isArtist,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&users.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("email already registered: %w", apperr.ErrConflict)
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return users.User{}, err
	}
	return user, nil
}

func (r *UserRepo) GetByID(id uint) (users.User, error) {
	var u users.User
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return users.User{}, fmt.Errorf("user not found: %w", apperr.ErrNotFound)
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(email string) (users.User, error) {
	var u users.User
	if err := r.DB.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return users.User{}, fmt.Errorf("user not found: %w", apperr.ErrNotFound)
		}
		return users.User{}, err
	}
	return u, nil
}
