// AngelaMos | 2026
// dto.go

package revenue

type CreateRevenueRequest struct {
	CompanyID *int64   `json:"id_empresa"         validate:"required,gt=0"`
	Monthly   *float64 `json:"faturamento_mensal" validate:"required"`
	Annual    *float64 `json:"faturamento_anual"  validate:"required"`
}

type UpdateRevenueRequest struct {
	CompanyID *int64   `json:"id_empresa,omitempty"         validate:"omitempty,gt=0"`
	Monthly   *float64 `json:"faturamento_mensal,omitempty"`
	Annual    *float64 `json:"faturamento_anual,omitempty"`
}

func (p UpdateRevenueRequest) Apply(rev *Revenue) {
	if p.CompanyID != nil {
		rev.CompanyID = *p.CompanyID
	}
	if p.Monthly != nil {
		rev.Monthly = *p.Monthly
	}
	if p.Annual != nil {
		rev.Annual = *p.Annual
	}
}

type RevenueResponse struct {
	ID        int64   `json:"id_faturamento"`
	CompanyID int64   `json:"id_empresa"`
	Monthly   float64 `json:"faturamento_mensal"`
	Annual    float64 `json:"faturamento_anual"`
}

func ToRevenueResponse(rev *Revenue) RevenueResponse {
	return RevenueResponse{
		ID:        rev.ID,
		CompanyID: rev.CompanyID,
		Monthly:   rev.Monthly,
		Annual:    rev.Annual,
	}
}

func ToRevenueResponseList(revenues []Revenue) []RevenueResponse {
	responses := make([]RevenueResponse, 0, len(revenues))
	for _, rev := range revenues {
		responses = append(responses, ToRevenueResponse(&rev))
	}
	return responses
}
