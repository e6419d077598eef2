// AngelaMos | 2026
// repository.go

package insight

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

const directorRankLimit = 4

type Repository interface {
	CompanySummaries(ctx context.Context) ([]CompanySummary, error)
	LowestRevenueDirectors(ctx context.Context) ([]DirectorRevenue, error)
	SampleDirectors(ctx context.Context) ([]DirectorRevenue, error)
	ProductsBySales(ctx context.Context) ([]ProductCompany, error)
	ProfitLeaders(ctx context.Context) ([]ProfitLeader, error)
	MonthlyRevenueByCompany(ctx context.Context) ([]MonthlyRevenue, error)
	DirectorScores(ctx context.Context) ([]DirectorScore, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// CompanySummaries covers companies that have both revenue and
// evaluations. Each side is aggregated on its own so one side's row
// count never multiplies the other's sum.
func (r *repository) CompanySummaries(ctx context.Context) ([]CompanySummary, error) {
	query := `
		SELECT c.name AS company_name,
		       rt.annual_total,
		       et.average_score
		FROM companies c
		JOIN (
			SELECT company_id, SUM(annual) AS annual_total
			FROM revenues
			GROUP BY company_id
		) rt ON rt.company_id = c.id
		JOIN (
			SELECT company_id, AVG(company_score)::float8 AS average_score
			FROM director_evaluations
			GROUP BY company_id
		) et ON et.company_id = c.id
		ORDER BY c.name, c.id`

	return selectReport[CompanySummary](ctx, r.db, "company summaries", query)
}

func (r *repository) LowestRevenueDirectors(ctx context.Context) ([]DirectorRevenue, error) {
	query := `
		SELECT c.director, r.annual AS annual_revenue
		FROM companies c
		JOIN revenues r ON r.company_id = c.id
		ORDER BY r.annual ASC
		LIMIT $1`

	return selectReport[DirectorRevenue](
		ctx, r.db, "lowest revenue directors", query, directorRankLimit,
	)
}

// SampleDirectors returns director and revenue pairs in no particular
// order.
func (r *repository) SampleDirectors(ctx context.Context) ([]DirectorRevenue, error) {
	query := `
		SELECT c.director, r.annual AS annual_revenue
		FROM companies c
		JOIN revenues r ON r.company_id = c.id
		LIMIT $1`

	return selectReport[DirectorRevenue](
		ctx, r.db, "sample directors", query, directorRankLimit,
	)
}

func (r *repository) ProductsBySales(ctx context.Context) ([]ProductCompany, error) {
	query := `
		SELECT ps.product_name, c.name AS company_name
		FROM products_sold ps
		JOIN revenues r ON r.id = ps.revenue_id
		JOIN companies c ON c.id = r.company_id
		ORDER BY ps.quantity ASC, ps.id`

	return selectReport[ProductCompany](ctx, r.db, "products by sales", query)
}

// ProfitLeaders pairs every catalogued product of a company with the
// company's annual revenue total and units sold, highest revenue first.
func (r *repository) ProfitLeaders(ctx context.Context) ([]ProfitLeader, error) {
	query := `
		SELECT c.director,
		       pd.name AS product_name,
		       c.name AS company_name,
		       rt.revenue_total,
		       st.units_sold
		FROM companies c
		JOIN (
			SELECT company_id, SUM(annual) AS revenue_total
			FROM revenues
			GROUP BY company_id
		) rt ON rt.company_id = c.id
		JOIN (
			SELECT r.company_id, SUM(ps.quantity) AS units_sold
			FROM products_sold ps
			JOIN revenues r ON r.id = ps.revenue_id
			GROUP BY r.company_id
		) st ON st.company_id = c.id
		JOIN (
			SELECT DISTINCT company_id, name
			FROM product_details
		) pd ON pd.company_id = c.id
		ORDER BY rt.revenue_total DESC, c.name, pd.name`

	return selectReport[ProfitLeader](ctx, r.db, "profit leaders", query)
}

func (r *repository) MonthlyRevenueByCompany(ctx context.Context) ([]MonthlyRevenue, error) {
	query := `
		SELECT c.name AS company_name, r.monthly AS monthly_revenue
		FROM companies c
		JOIN revenues r ON r.company_id = c.id
		ORDER BY c.id, r.id`

	return selectReport[MonthlyRevenue](
		ctx, r.db, "monthly revenue by company", query,
	)
}

func (r *repository) DirectorScores(ctx context.Context) ([]DirectorScore, error) {
	query := `
		SELECT c.director, AVG(e.director_score)::float8 AS average_score
		FROM companies c
		JOIN director_evaluations e ON e.company_id = c.id
		GROUP BY c.director
		ORDER BY c.director`

	return selectReport[DirectorScore](ctx, r.db, "director scores", query)
}

// selectReport runs one report query inside its own span.
func selectReport[T any](
	ctx context.Context,
	db core.DBTX,
	report string,
	query string,
	args ...any,
) ([]T, error) {
	ctx, end := core.StartSpan(ctx, "insight.report",
		attribute.String("insight.report", report),
	)

	rows := []T{}
	err := db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		err = fmt.Errorf("%s: %w", report, err)
	}
	end(err)

	if err != nil {
		return nil, err
	}
	return rows, nil
}
