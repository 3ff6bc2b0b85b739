package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an immutable purchase record. The product price is copied into
// PriceAtPurchase when the order is placed and never recomputed, so later
// catalog price changes do not affect existing orders.
type Order struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	ProductID       uint            `gorm:"not null;index" json:"-"`
	Product         Product         `gorm:"foreignKey:ProductID" json:"product"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_purchase"`
	Reference       uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`
	CreatedAt       time.Time       `json:"created_at"`
}
