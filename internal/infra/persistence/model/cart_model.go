package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. A user holds at most one cart, so the
// user ID doubles as the primary key. The version column guards against
// concurrent lost updates.
type CartModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null"`
	Version    int64     `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items []CartItemModel `gorm:"foreignKey:CartUserID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. One row per medicine line in
// a cart.
type CartItemModel struct {
	CartUserID uuid.UUID `gorm:"type:uuid;primary_key"`
	MedicineID uuid.UUID `gorm:"type:uuid;primary_key"`
	Quantity   int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
