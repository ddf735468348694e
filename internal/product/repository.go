package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ecofinds-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Product, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, p Product) (uint, error)
	Update(ctx context.Context, id uint, params UpdateParams) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, title, category, description, price, image, owner_id, created_at`

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	where := []string{}
	args := []any{}

	if filter.Category != "" && filter.Category != "all" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		log.Error("row scan failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uint) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.OwnerID,
		&p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (uint, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.Uint("owner_id", p.OwnerID),
	)

	var id uint
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (title, category, description, price, image, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		p.Title,
		p.Category,
		p.Description,
		p.Price,
		p.Image,
		p.OwnerID,
	).Scan(&id)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return 0, err
	}

	log.Info("product created", zap.Uint("product_id", id))

	return id, nil
}

// Update applies only the supplied fields, leaving the rest untouched.
func (r *repository) Update(ctx context.Context, id uint, params UpdateParams) error {
	var price any
	if params.Price != nil {
		price = *params.Price
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET title       = COALESCE($1, title),
		    category    = COALESCE($2, category),
		    description = COALESCE($3, description),
		    price       = COALESCE($4, price),
		    image       = COALESCE($5, image)
		WHERE id = $6
	`,
		params.Title,
		params.Category,
		params.Description,
		price,
		params.Image,
		id,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Category,
			&p.Description,
			&p.Price,
			&p.Image,
			&p.OwnerID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
