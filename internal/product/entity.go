// AngelaMos | 2026
// entity.go

package product

import (
	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

// Detail is the catalogue entry of a product a company offers.
type Detail struct {
	ID           int64     `db:"id"`
	CompanyID    int64     `db:"company_id"`
	Name         string    `db:"name"`
	Category     string    `db:"category"`
	UnitPrice    float64   `db:"unit_price"`
	ProfitMargin float64   `db:"profit_margin"`
	LaunchDate   core.Date `db:"launch_date"`
}
