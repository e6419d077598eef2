// AngelaMos | 2026
// dto.go

package evaluation

// CreateEvaluationRequest requires every key. An empty comentario is
// accepted; a missing one is not.
type CreateEvaluationRequest struct {
	CompanyID     *int64  `json:"id_empresa"         validate:"required,gt=0"`
	DirectorScore *int    `json:"nota_diretor"       validate:"required"`
	CompanyScore  *int    `json:"nota_geral_empresa" validate:"required"`
	Comment       *string `json:"comentario"         validate:"required,max=2000"`
}

// UpdateEvaluationRequest cannot move an evaluation to another company.
type UpdateEvaluationRequest struct {
	DirectorScore *int    `json:"nota_diretor,omitempty"`
	CompanyScore  *int    `json:"nota_geral_empresa,omitempty"`
	Comment       *string `json:"comentario,omitempty"         validate:"omitempty,max=2000"`
}

func (p UpdateEvaluationRequest) Apply(e *Evaluation) {
	if p.DirectorScore != nil {
		e.DirectorScore = *p.DirectorScore
	}
	if p.CompanyScore != nil {
		e.CompanyScore = *p.CompanyScore
	}
	if p.Comment != nil {
		e.Comment = *p.Comment
	}
}

type EvaluationResponse struct {
	ID            int64  `json:"id_avaliacao"`
	CompanyID     int64  `json:"id_empresa"`
	DirectorScore int    `json:"nota_diretor"`
	CompanyScore  int    `json:"nota_geral_empresa"`
	Comment       string `json:"comentario"`
}

func ToEvaluationResponse(e *Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		DirectorScore: e.DirectorScore,
		CompanyScore:  e.CompanyScore,
		Comment:       e.Comment,
	}
}

func ToEvaluationResponseList(evaluations []Evaluation) []EvaluationResponse {
	responses := make([]EvaluationResponse, 0, len(evaluations))
	for _, e := range evaluations {
		responses = append(responses, ToEvaluationResponse(&e))
	}
	return responses
}
