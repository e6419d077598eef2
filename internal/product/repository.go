// AngelaMos | 2026
// repository.go

package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, d *Detail) error
	GetByID(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context) ([]Detail, error)
	Update(ctx context.Context, d *Detail) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const detailColumns = `id, company_id, name, category, unit_price, profit_margin, launch_date`

func (r *repository) Create(ctx context.Context, d *Detail) error {
	query := `
		INSERT INTO product_details
			(company_id, name, category, unit_price, profit_margin, launch_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.GetContext(ctx, &d.ID, query,
		d.CompanyID,
		d.Name,
		d.Category,
		d.UnitPrice,
		d.ProfitMargin,
		d.LaunchDate,
	)
	if err != nil {
		return fmt.Errorf("create product detail: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	query := `SELECT ` + detailColumns + `
		FROM product_details
		WHERE id = $1`

	var d Detail
	err := r.db.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product detail by id: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product detail by id: %w", err)
	}

	return &d, nil
}

func (r *repository) List(ctx context.Context) ([]Detail, error) {
	query := `SELECT ` + detailColumns + `
		FROM product_details
		ORDER BY id`

	details := []Detail{}
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		return nil, fmt.Errorf("list product details: %w", err)
	}

	return details, nil
}

func (r *repository) Update(ctx context.Context, d *Detail) error {
	query := `
		UPDATE product_details
		SET company_id = $2, name = $3, category = $4,
			unit_price = $5, profit_margin = $6, launch_date = $7
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.CompanyID,
		d.Name,
		d.Category,
		d.UnitPrice,
		d.ProfitMargin,
		d.LaunchDate,
	)
	if err != nil {
		return fmt.Errorf("update product detail: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product detail: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update product detail: %w", core.ErrNotFound)
	}

	return nil
}
