// AngelaMos | 2026
// service.go

package evaluation

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type CompanyChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo      Repository
	companies CompanyChecker
}

func NewService(repo Repository, companies CompanyChecker) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
	}
}

func (s *Service) List(ctx context.Context) ([]Evaluation, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateEvaluationRequest,
) (*Evaluation, error) {
	exists, err := s.companies.Exists(ctx, *req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return nil, core.ReferenceNotFoundError("company", *req.CompanyID)
	}

	e := &Evaluation{
		CompanyID:     *req.CompanyID,
		DirectorScore: *req.DirectorScore,
		CompanyScore:  *req.CompanyScore,
		Comment:       *req.Comment,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateEvaluationRequest,
) (*Evaluation, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(e)

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}
