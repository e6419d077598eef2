// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

// RecordCounts is the number of stored rows per business table.
type RecordCounts struct {
	Users          int64 `db:"users"                json:"users"`
	Companies      int64 `db:"companies"            json:"companies"`
	Revenues       int64 `db:"revenues"             json:"revenues"`
	ProductsSold   int64 `db:"products_sold"        json:"products_sold"`
	ProductDetails int64 `db:"product_details"      json:"product_details"`
	Evaluations    int64 `db:"director_evaluations" json:"director_evaluations"`
}

type Repository interface {
	CountRecords(ctx context.Context) (*RecordCounts, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CountRecords(ctx context.Context) (*RecordCounts, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM users)                AS users,
		       (SELECT COUNT(*) FROM companies)            AS companies,
		       (SELECT COUNT(*) FROM revenues)             AS revenues,
		       (SELECT COUNT(*) FROM products_sold)        AS products_sold,
		       (SELECT COUNT(*) FROM product_details)      AS product_details,
		       (SELECT COUNT(*) FROM director_evaluations) AS director_evaluations`

	var counts RecordCounts
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	return &counts, nil
}
