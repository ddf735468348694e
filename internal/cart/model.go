package cart

import (
	"ecofinds-be/internal/product"

	"github.com/shopspring/decimal"
)

// Entry is a snapshot of a product at the moment it entered the cart.
// Later edits or deletion of the product do not touch it.
type Entry struct {
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}

// Cart is an ordered list of entries. Order matters: removal is by
// index. The zero value is an empty cart.
type Cart struct {
	Entries []Entry `json:"entries"`
}

// Snapshot copies the purchasable fields out of a product.
func Snapshot(p *product.Product) Entry {
	return Entry{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
	}
}

// Add appends an entry. Adding the same product twice yields two
// entries; there is no dedup.
func (c Cart) Add(e Entry) Cart {
	entries := make([]Entry, 0, len(c.Entries)+1)
	entries = append(entries, c.Entries...)
	entries = append(entries, e)
	return Cart{Entries: entries}
}

// RemoveAt drops the entry at index. An out-of-range index is a silent
// no-op, not an error.
func (c Cart) RemoveAt(index int) Cart {
	if index < 0 || index >= len(c.Entries) {
		return c
	}
	entries := make([]Entry, 0, len(c.Entries)-1)
	entries = append(entries, c.Entries[:index]...)
	entries = append(entries, c.Entries[index+1:]...)
	return Cart{Entries: entries}
}

// Total sums the snapshot prices. An empty cart totals zero.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.Entries {
		total = total.Add(e.Price)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

func (c Cart) Len() int {
	return len(c.Entries)
}
