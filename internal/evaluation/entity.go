// AngelaMos | 2026
// entity.go

package evaluation

type Evaluation struct {
	ID            int64  `db:"id"`
	CompanyID     int64  `db:"company_id"`
	DirectorScore int    `db:"director_score"`
	CompanyScore  int    `db:"company_score"`
	Comment       string `db:"comment"`
}
