// AngelaMos | 2026
// service.go

package product

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

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateDetailRequest,
) (*Detail, error) {
	if err := s.checkCompany(ctx, *req.CompanyID); err != nil {
		return nil, err
	}

	d := &Detail{
		CompanyID:    *req.CompanyID,
		Name:         req.Name,
		Category:     req.Category,
		UnitPrice:    *req.UnitPrice,
		ProfitMargin: *req.ProfitMargin,
		LaunchDate:   *req.LaunchDate,
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateDetailRequest,
) (*Detail, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		if err := s.checkCompany(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	req.Apply(d)

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
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
