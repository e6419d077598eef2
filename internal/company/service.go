// AngelaMos | 2026
// service.go

package company

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateCompanyRequest,
) (*Company, error) {
	company := &Company{
		Name:     req.Name,
		Director: req.Director,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateCompanyRequest,
) (*Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(company)

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// Exists lets dependent records check their company reference.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
