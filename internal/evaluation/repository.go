// AngelaMos | 2026
// repository.go

package evaluation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, e *Evaluation) error
	GetByID(ctx context.Context, id int64) (*Evaluation, error)
	List(ctx context.Context) ([]Evaluation, error)
	Update(ctx context.Context, e *Evaluation) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	query := `
		INSERT INTO director_evaluations
			(company_id, director_score, company_score, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.GetContext(ctx, &e.ID, query,
		e.CompanyID,
		e.DirectorScore,
		e.CompanyScore,
		e.Comment,
	)
	if err != nil {
		return fmt.Errorf("create evaluation: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Evaluation, error) {
	query := `
		SELECT id, company_id, director_score, company_score, comment
		FROM director_evaluations
		WHERE id = $1`

	var e Evaluation
	err := r.db.GetContext(ctx, &e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get evaluation by id: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get evaluation by id: %w", err)
	}

	return &e, nil
}

func (r *repository) List(ctx context.Context) ([]Evaluation, error) {
	query := `
		SELECT id, company_id, director_score, company_score, comment
		FROM director_evaluations
		ORDER BY id`

	evaluations := []Evaluation{}
	if err := r.db.SelectContext(ctx, &evaluations, query); err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}

	return evaluations, nil
}

func (r *repository) Update(ctx context.Context, e *Evaluation) error {
	query := `
		UPDATE director_evaluations
		SET director_score = $2, company_score = $3, comment = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.DirectorScore,
		e.CompanyScore,
		e.Comment,
	)
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update evaluation: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update evaluation: %w", core.ErrNotFound)
	}

	return nil
}
