package models

import "fmt"

// ItemKind distinguishes food and drink line items in the cart.
type ItemKind string

const (
	ItemFood  ItemKind = "food"
	ItemDrink ItemKind = "drink"
)

// DrinkQuantityCap is the fixed per-line quantity limit for drinks, which
// have no authoritative stock count.
const DrinkQuantityCap = 20

// FallbackFoodCap limits a food line's quantity when the stored stock
// quantity is absent.
const FallbackFoodCap = 50

// LineItem is one cart entry. Name and unit price are snapshotted from the
// catalog at selection time; later catalog changes do not affect it.
type LineItem struct {
	Kind      ItemKind `json:"kind"`
	ItemID    uint     `json:"item_id"`
	Name      string   `json:"name"`
	UnitPrice int      `json:"unit_price"`
	Quantity  int      `json:"quantity"`
}

// Subtotal returns unit price times quantity for this line.
func (li LineItem) Subtotal() int {
	return li.UnitPrice * li.Quantity
}

// Cart holds the user's in-progress selection. It is transient: nothing is
// persisted until checkout, and a successful checkout clears it. Repeated
// adds of the same item create separate line items rather than merging.
type Cart struct {
	items []LineItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a line item. The quantity must be a positive integer.
func (c *Cart) Add(kind ItemKind, itemID uint, name string, unitPrice, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	c.items = append(c.items, LineItem{
		Kind:      kind,
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
	return nil
}

// Remove deletes the line item at the given zero-based position. An
// out-of-range index is a no-op.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Total returns the sum of unit price times quantity over all current line
// items, 0 for an empty cart.
func (c *Cart) Total() int {
	total := 0
	for _, li := range c.items {
		total += li.Subtotal()
	}
	return total
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// First returns the first line item of the given kind in insertion order,
// or nil if the cart holds none. The order record keeps only this item's id
// for each kind.
func (c *Cart) First(kind ItemKind) *LineItem {
	for i := range c.items {
		if c.items[i].Kind == kind {
			return &c.items[i]
		}
	}
	return nil
}
