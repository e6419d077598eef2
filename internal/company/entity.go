// AngelaMos | 2026
// entity.go

package company

type Company struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Director string `db:"director"`
}
