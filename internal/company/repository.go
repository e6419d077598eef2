// AngelaMos | 2026
// repository.go

package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company *Company) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, company *Company) error {
	query := `
		INSERT INTO companies (name, director)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.GetContext(ctx, &company.ID, query, company.Name, company.Director)
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Company, error) {
	query := `
		SELECT id, name, director
		FROM companies
		WHERE id = $1`

	var company Company
	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get company by id: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get company by id: %w", err)
	}

	return &company, nil
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	query := `
		SELECT id, name, director
		FROM companies
		ORDER BY id`

	companies := []Company{}
	if err := r.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

func (r *repository) Update(ctx context.Context, company *Company) error {
	query := `
		UPDATE companies
		SET name = $2, director = $3
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		company.ID,
		company.Name,
		company.Director,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update company: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check company exists: %w", err)
	}

	return exists, nil
}
