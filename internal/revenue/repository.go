// AngelaMos | 2026
// repository.go

package revenue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, rev *Revenue) error
	GetByID(ctx context.Context, id int64) (*Revenue, error)
	List(ctx context.Context) ([]Revenue, error)
	Update(ctx context.Context, rev *Revenue) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rev *Revenue) error {
	query := `
		INSERT INTO revenues (company_id, monthly, annual)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.GetContext(ctx, &rev.ID, query,
		rev.CompanyID,
		rev.Monthly,
		rev.Annual,
	)
	if err != nil {
		return fmt.Errorf("create revenue: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Revenue, error) {
	query := `
		SELECT id, company_id, monthly, annual
		FROM revenues
		WHERE id = $1`

	var rev Revenue
	err := r.db.GetContext(ctx, &rev, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get revenue by id: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get revenue by id: %w", err)
	}

	return &rev, nil
}

func (r *repository) List(ctx context.Context) ([]Revenue, error) {
	query := `
		SELECT id, company_id, monthly, annual
		FROM revenues
		ORDER BY id`

	revenues := []Revenue{}
	if err := r.db.SelectContext(ctx, &revenues, query); err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}

	return revenues, nil
}

func (r *repository) Update(ctx context.Context, rev *Revenue) error {
	query := `
		UPDATE revenues
		SET company_id = $2, monthly = $3, annual = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		rev.ID,
		rev.CompanyID,
		rev.Monthly,
		rev.Annual,
	)
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update revenue: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM revenues WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check revenue exists: %w", err)
	}

	return exists, nil
}
