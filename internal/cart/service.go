package cart

import (
	"context"

	"ecofinds-be/internal/logger"
	"ecofinds-be/internal/product"

	"go.uber.org/zap"
)

// Service holds the cart mutations that need a product lookup. The cart
// itself is a value: the caller loads it from its session, passes it in,
// and persists whatever comes back.
type Service interface {
	AddToCart(ctx context.Context, c Cart, productID uint) (Cart, error)
}

type service struct {
	productRepo product.Repository
}

func NewService(productRepo product.Repository) Service {
	return &service{productRepo: productRepo}
}

// AddToCart snapshots the product and appends it to the cart.
func (s *service) AddToCart(ctx context.Context, c Cart, productID uint) (Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.Uint("product_id", productID),
	)

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Error("failed to look up product", zap.Error(err))
		return c, err
	}
	if p == nil {
		return c, ErrProductNotFound
	}

	updated := c.Add(Snapshot(p))

	log.Debug("product added to cart",
		zap.Int("cart_size", updated.Len()),
	)

	return updated, nil
}
