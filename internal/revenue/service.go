// AngelaMos | 2026
// service.go

package revenue

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

func (s *Service) List(ctx context.Context) ([]Revenue, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateRevenueRequest,
) (*Revenue, error) {
	if err := s.checkCompany(ctx, *req.CompanyID); err != nil {
		return nil, err
	}

	rev := &Revenue{
		CompanyID: *req.CompanyID,
		Monthly:   *req.Monthly,
		Annual:    *req.Annual,
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return nil, err
	}

	return rev, nil
}

// Update checks the company reference only when the patch changes it.
func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateRevenueRequest,
) (*Revenue, error) {
	rev, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		if err := s.checkCompany(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	req.Apply(rev)

	if err := s.repo.Update(ctx, rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service) checkCompany(ctx context.Context, companyID int64) error {
	exists, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return fmt.Errorf("check company: %w", err)
	}
	if !exists {
		return core.ReferenceNotFoundError("company", companyID)
	}
	return nil
}
