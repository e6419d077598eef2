// AngelaMos | 2026
// service.go

package sale

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type RevenueChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo     Repository
	revenues RevenueChecker
}

func NewService(repo Repository, revenues RevenueChecker) *Service {
	return &Service{
		repo:     repo,
		revenues: revenues,
	}
}

func (s *Service) List(ctx context.Context) ([]ProductSold, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProductSoldRequest,
) (*ProductSold, error) {
	if err := s.checkRevenue(ctx, *req.RevenueID); err != nil {
		return nil, err
	}

	ps := &ProductSold{
		RevenueID:   *req.RevenueID,
		ProductName: req.ProductName,
		Quantity:    *req.Quantity,
	}

	if err := s.repo.Create(ctx, ps); err != nil {
		return nil, err
	}

	return ps, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateProductSoldRequest,
) (*ProductSold, error) {
	ps, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RevenueID != nil {
		if err := s.checkRevenue(ctx, *req.RevenueID); err != nil {
			return nil, err
		}
	}

	req.Apply(ps)

	if err := s.repo.Update(ctx, ps); err != nil {
		return nil, err
	}

	return ps, nil
}

func (s *Service) checkRevenue(ctx context.Context, revenueID int64) error {
	exists, err := s.revenues.Exists(ctx, revenueID)
	if err != nil {
		return fmt.Errorf("check revenue: %w", err)
	}
	if !exists {
		return core.ReferenceNotFoundError("revenue", revenueID)
	}
	return nil
}
