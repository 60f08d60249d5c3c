// Package repo owns CRUD persistence for the four entities. Repositories
// check referential integrity inside the same transaction as the write, so
// a failed create never leaves a row behind.
package repo

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepo
	Artworks  *ArtworkRepo
	Reviews   *ReviewRepo
	Purchases *PurchaseRepo
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:     &UserRepo{DB: db},
		Artworks:  &ArtworkRepo{DB: db},
		Reviews:   &ReviewRepo{DB: db},
		Purchases: &PurchaseRepo{DB: db},
	}
}

func rowExists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
