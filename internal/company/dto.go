// AngelaMos | 2026
// dto.go

package company

type CreateCompanyRequest struct {
	Name     string `json:"nome_empresa"    validate:"notblank,max=255"`
	Director string `json:"diretor_empresa" validate:"notblank,max=255"`
}

// UpdateCompanyRequest is a partial update; nil fields are left as stored.
type UpdateCompanyRequest struct {
	Name     *string `json:"nome_empresa,omitempty"    validate:"omitempty,notblank,max=255"`
	Director *string `json:"diretor_empresa,omitempty" validate:"omitempty,notblank,max=255"`
}

func (p UpdateCompanyRequest) Apply(c *Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Director != nil {
		c.Director = *p.Director
	}
}

type CompanyResponse struct {
	ID       int64  `json:"id_empresa"`
	Name     string `json:"nome_empresa"`
	Director string `json:"diretor_empresa"`
}

func ToCompanyResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:       c.ID,
		Name:     c.Name,
		Director: c.Director,
	}
}

func ToCompanyResponseList(companies []Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, ToCompanyResponse(&c))
	}
	return responses
}
