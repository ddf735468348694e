package order

import (
	"context"

	"ecofinds-be/internal/cart"
	"ecofinds-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, userID uint, c cart.Cart) (uint, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Checkout turns the cart into a persisted order. The total comes from
// the snapshots already in the cart; product price changes made after
// add-to-cart do not affect it. The caller clears its session cart once
// this returns successfully.
//
// Two concurrent checkouts on the same session can both observe a
// non-empty cart and double-submit; the session read-clear is not
// atomic across requests. Known limitation.
func (s *service) Checkout(ctx context.Context, userID uint, c cart.Cart) (uint, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
	)

	if c.IsEmpty() {
		return 0, ErrEmptyCart
	}

	total := c.Total()

	orderID, err := s.repo.CreateOrderTx(ctx, userID, total, c.Entries)
	if err != nil {
		log.Error("checkout failed", zap.Error(err))
		return 0, err
	}

	log.Info("checkout completed",
		zap.Uint("order_id", orderID),
		zap.String("total", total.String()),
		zap.Int("item_count", c.Len()),
	)

	return orderID, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
