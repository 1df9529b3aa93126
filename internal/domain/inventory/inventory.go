// Package inventory holds the outreach supply records.
package inventory

import (
	"errors"
	"strings"
)

// LowStockThreshold is the quantity below which an item is flagged.
const LowStockThreshold = 20

// ErrNameRequired is returned when an item is saved without a name.
var ErrNameRequired = errors.New("item name is required")

// Item is a counted outreach supply (stickers, shirts, notebooks, ...).
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// Validate checks the required fields for an item.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// Normalize applies the field defaults: negative counts clamp to zero and a
// blank category reads as General.
func (i *Item) Normalize() {
	if i.Quantity < 0 {
		i.Quantity = 0
	}
	if strings.TrimSpace(i.Category) == "" {
		i.Category = "General"
	}
}

// LowStock reports whether the item needs reordering.
func (i *Item) LowStock() bool {
	return i.Quantity < LowStockThreshold
}
