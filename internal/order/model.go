package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItem     `json:"items"`
}

// OrderItem carries the title/price/image the buyer actually saw.
// These are copies taken at checkout, not references: editing or
// deleting the product afterwards must not change them.
type OrderItem struct {
	ID        uint            `json:"id"`
	OrderID   uint            `json:"order_id"`
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
}
