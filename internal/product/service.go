package product

import (
	"context"
	"strings"
	"time"

	"ecofinds-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, input CreateInput) (uint, error)
	Update(ctx context.Context, id, actorID uint, input UpdateInput) error
	Delete(ctx context.Context, id, actorID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Authorize decides whether actorID may modify a listing owned by
// ownerID. It depends on nothing but its arguments.
func Authorize(actorID, ownerID uint) error {
	if actorID != ownerID {
		return ErrForbidden
	}
	return nil
}

// ParsePrice normalizes a raw price field. Absent or unparsable input
// becomes zero rather than an error; negative input is clamped to zero.
func ParsePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}
	return price
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListByOwner(ctx context.Context, ownerID uint) ([]Product, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (uint, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.Uint("owner_id", input.OwnerID),
	)

	if strings.TrimSpace(input.Title) == "" {
		return 0, ErrTitleRequired
	}

	start := time.Now()

	id, err := s.repo.Create(ctx, Product{
		Title:       strings.TrimSpace(input.Title),
		Category:    ParseCategory(input.Category),
		Description: input.Description,
		Price:       ParsePrice(input.Price),
		Image:       input.Image,
		OwnerID:     input.OwnerID,
	})
	if err != nil {
		log.Error("failed to create product",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return 0, err
	}

	log.Info("listing created",
		zap.Uint("product_id", id),
		zap.Duration("duration", time.Since(start)),
	)

	return id, nil
}

func (s *service) Update(ctx context.Context, id, actorID uint, input UpdateInput) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := Authorize(actorID, existing.OwnerID); err != nil {
		return err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return ErrTitleRequired
	}

	params := UpdateParams{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
	}
	if input.Category != nil {
		category := ParseCategory(*input.Category)
		params.Category = &category
	}
	if input.Price != nil {
		price := ParsePrice(*input.Price)
		params.Price = &price
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id, actorID uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := Authorize(actorID, existing.OwnerID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
