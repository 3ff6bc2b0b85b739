package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Location string

const (
	LocationJordan Location = "JO"
	LocationSaudi  Location = "SA"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Location    Location        `gorm:"type:VARCHAR(2);default:'JO'" json:"location"`
	Orders      []Order         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IsLocationCode reports whether s is exactly one of the two stored codes.
func IsLocationCode(s string) bool {
	return s == string(LocationJordan) || s == string(LocationSaudi)
}
