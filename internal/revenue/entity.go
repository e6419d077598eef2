// AngelaMos | 2026
// entity.go

package revenue

type Revenue struct {
	ID        int64   `db:"id"`
	CompanyID int64   `db:"company_id"`
	Monthly   float64 `db:"monthly"`
	Annual    float64 `db:"annual"`
}
