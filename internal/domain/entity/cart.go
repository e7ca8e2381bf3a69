// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the singleton shopping cart of a user, keyed by the user's ID.
// A cart holds lines from exactly one pharmacy at a time; switching
// pharmacies requires clearing the cart first. Empty carts are never
// persisted: removing the last line deletes the record.
type Cart struct {
	UserID     uuid.UUID  // Owning user; doubles as the cart's identity.
	PharmacyID uuid.UUID  // The single pharmacy all lines belong to.
	Items      []CartItem // Ordered line items.
	Version    int64      // Optimistic-concurrency counter, bumped on every write.
	CreatedAt  time.Time  // Timestamp of the first add.
	UpdatedAt  time.Time  // Timestamp of the last mutation.
}

// CartItem is a single (medicine, quantity) line in a cart.
type CartItem struct {
	MedicineID uuid.UUID // Weak reference to the medicine; priced at read time.
	Quantity   int       // Units requested, always positive.
}

// Line returns the line for the given medicine, or nil when absent.
func (c *Cart) Line(medicineID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].MedicineID == medicineID {
			return &c.Items[i]
		}
	}

	return nil
}

// IsEmpty reports whether the cart has no lines left.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
