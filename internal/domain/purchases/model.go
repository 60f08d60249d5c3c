package purchases

import "time"

// Purchase is a completed-transaction record. No quantity, no payment
// confirmation; the row itself is the receipt.
type Purchase struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint `gorm:"not null;index" json:"user_id"`
	ArtworkID uint `gorm:"not null;index" json:"artwork_id"`

	PurchaseDate time.Time `gorm:"not null" json:"purchase_date"`
}
