package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryFurniture   Category = "furniture"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryOther       Category = "other"
)

// Categories lists the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFurniture,
		CategoryBooks,
		CategorySports,
		CategoryOther,
	}
}

// ParseCategory maps free-form input onto the fixed set, falling back to
// CategoryOther for anything it does not recognize.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

type Product struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	OwnerID     uint            `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ListFilter narrows the catalog listing. Category "all" or empty means
// no category filter; Search matches the title case-insensitively.
type ListFilter struct {
	Category string
	Search   string
}

// CreateInput carries the raw form values for a new listing. Price and
// Category are normalized by the service (unparsable price becomes 0,
// unknown category becomes CategoryOther).
type CreateInput struct {
	OwnerID     uint
	Title       string
	Category    string
	Description string
	Price       string
	Image       string
}

// UpdateInput carries only the raw form fields the caller supplied.
type UpdateInput struct {
	Title       *string
	Category    *string
	Description *string
	Price       *string
	Image       *string
}

// UpdateParams is the typed, normalized form of UpdateInput handed to the
// repository. Nil fields are left unchanged.
type UpdateParams struct {
	Title       *string
	Category    *Category
	Description *string
	Price       *decimal.Decimal
	Image       *string
}
