package order

import (
	"context"
	"database/sql"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, userID uint, total decimal.Decimal, entries []cart.Entry) (uint, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx persists the order and one item row per cart entry in a
// single transaction. Either everything commits or nothing does.
func (r *repository) CreateOrderTx(
	ctx context.Context,
	userID uint,
	total decimal.Decimal,
	entries []cart.Entry,
) (uint, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Uint("user_id", userID),
		zap.Int("item_count", len(entries)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var orderID uint
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, total)
		VALUES ($1, $2)
		RETURNING id
	`, userID, total).Scan(&orderID)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	for _, e := range entries {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, title, price, image)
			VALUES ($1, $2, $3, $4, $5)
		`, orderID, e.ProductID, e.Title, e.Price, e.Image)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Uint("product_id", e.ProductID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Info("order created", zap.Uint("order_id", orderID))

	return orderID, nil
}

// ListByUser returns the user's orders newest first, line items
// included.
func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, total, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.itemsByOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *repository) itemsByOrder(ctx context.Context, orderID uint) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, title, price, image
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItem, 0)
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Title,
			&item.Price,
			&item.Image,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
