// AngelaMos | 2026
// repository.go

package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, ps *ProductSold) error
	GetByID(ctx context.Context, id int64) (*ProductSold, error)
	List(ctx context.Context) ([]ProductSold, error)
	Update(ctx context.Context, ps *ProductSold) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ps *ProductSold) error {
	query := `
		INSERT INTO products_sold (revenue_id, product_name, quantity)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.GetContext(ctx, &ps.ID, query,
		ps.RevenueID,
		ps.ProductName,
		ps.Quantity,
	)
	if err != nil {
		return fmt.Errorf("create product sold: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*ProductSold, error) {
	query := `
		SELECT id, revenue_id, product_name, quantity
		FROM products_sold
		WHERE id = $1`

	var ps ProductSold
	err := r.db.GetContext(ctx, &ps, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product sold by id: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product sold by id: %w", err)
	}

	return &ps, nil
}

func (r *repository) List(ctx context.Context) ([]ProductSold, error) {
	query := `
		SELECT id, revenue_id, product_name, quantity
		FROM products_sold
		ORDER BY id`

	sales := []ProductSold{}
	if err := r.db.SelectContext(ctx, &sales, query); err != nil {
		return nil, fmt.Errorf("list products sold: %w", err)
	}

	return sales, nil
}

func (r *repository) Update(ctx context.Context, ps *ProductSold) error {
	query := `
		UPDATE products_sold
		SET revenue_id = $2, product_name = $3, quantity = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		ps.ID,
		ps.RevenueID,
		ps.ProductName,
		ps.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update product sold: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product sold: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update product sold: %w", core.ErrNotFound)
	}

	return nil
}
