// AngelaMos | 2026
// dto.go

package product

import (
	"github.com/carterperez-dev/templates/insights-api/internal/core"
)

type CreateDetailRequest struct {
	CompanyID    *int64     `json:"id_empresa"              validate:"required,gt=0"`
	Name         string     `json:"nome_produto"            validate:"notblank,max=255"`
	Category     string     `json:"categoria"               validate:"notblank,max=255"`
	UnitPrice    *float64   `json:"preco_unitario"          validate:"required,min=0"`
	ProfitMargin *float64   `json:"margem_lucro_percentual" validate:"required"`
	LaunchDate   *core.Date `json:"data_lancamento"         validate:"required"`
}

type UpdateDetailRequest struct {
	CompanyID    *int64     `json:"id_empresa,omitempty"              validate:"omitempty,gt=0"`
	Name         *string    `json:"nome_produto,omitempty"            validate:"omitempty,notblank,max=255"`
	Category     *string    `json:"categoria,omitempty"               validate:"omitempty,notblank,max=255"`
	UnitPrice    *float64   `json:"preco_unitario,omitempty"          validate:"omitempty,min=0"`
	ProfitMargin *float64   `json:"margem_lucro_percentual,omitempty"`
	LaunchDate   *core.Date `json:"data_lancamento,omitempty"`
}

func (p UpdateDetailRequest) Apply(d *Detail) {
	if p.CompanyID != nil {
		d.CompanyID = *p.CompanyID
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.UnitPrice != nil {
		d.UnitPrice = *p.UnitPrice
	}
	if p.ProfitMargin != nil {
		d.ProfitMargin = *p.ProfitMargin
	}
	if p.LaunchDate != nil {
		d.LaunchDate = *p.LaunchDate
	}
}

type DetailResponse struct {
	ID           int64     `json:"id_produto"`
	CompanyID    int64     `json:"id_empresa"`
	Name         string    `json:"nome_produto"`
	Category     string    `json:"categoria"`
	UnitPrice    float64   `json:"preco_unitario"`
	ProfitMargin float64   `json:"margem_lucro_percentual"`
	LaunchDate   core.Date `json:"data_lancamento"`
}

func ToDetailResponse(d *Detail) DetailResponse {
	return DetailResponse{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Category:     d.Category,
		UnitPrice:    d.UnitPrice,
		ProfitMargin: d.ProfitMargin,
		LaunchDate:   d.LaunchDate,
	}
}

func ToDetailResponseList(details []Detail) []DetailResponse {
	responses := make([]DetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToDetailResponse(&d))
	}
	return responses
}
