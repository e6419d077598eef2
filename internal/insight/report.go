// AngelaMos | 2026
// report.go

package insight

type CompanySummary struct {
	CompanyName        string  `db:"company_name"  json:"nome_empresa"`
	AnnualRevenueTotal float64 `db:"annual_total"  json:"faturamento_total_anual"`
	AverageScore       float64 `db:"average_score" json:"media_nota_empresa"`
}

type DirectorRevenue struct {
	Director      string  `db:"director"       json:"diretor_empresa"`
	AnnualRevenue float64 `db:"annual_revenue" json:"faturamento_anual"`
}

type ProductCompany struct {
	ProductName string `db:"product_name" json:"nome_produto"`
	CompanyName string `db:"company_name" json:"nome_empresa"`
}

type ProfitLeader struct {
	Director     string  `db:"director"      json:"diretor_empresa"`
	ProductName  string  `db:"product_name"  json:"nome_produto"`
	CompanyName  string  `db:"company_name"  json:"nome_empresa"`
	RevenueTotal float64 `db:"revenue_total" json:"faturamento_total"`
	UnitsSold    int64   `db:"units_sold"    json:"total_produtos_vendidos"`
}

type MonthlyRevenue struct {
	CompanyName    string  `db:"company_name"    json:"nome_empresa"`
	MonthlyRevenue float64 `db:"monthly_revenue" json:"faturamento_mensal"`
}

type DirectorScore struct {
	Director     string  `db:"director"      json:"diretor_empresa"`
	AverageScore float64 `db:"average_score" json:"media_nota"`
}
