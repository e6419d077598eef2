// AngelaMos | 2026
// dto.go

package sale

type CreateProductSoldRequest struct {
	RevenueID   *int64 `json:"id_faturamento"    validate:"required,gt=0"`
	ProductName string `json:"nome_produto"      validate:"notblank,max=255"`
	Quantity    *int   `json:"produtos_vendidos" validate:"required,min=0,max=2147483647"`
}

type UpdateProductSoldRequest struct {
	RevenueID   *int64  `json:"id_faturamento,omitempty"    validate:"omitempty,gt=0"`
	ProductName *string `json:"nome_produto,omitempty"      validate:"omitempty,notblank,max=255"`
	Quantity    *int    `json:"produtos_vendidos,omitempty" validate:"omitempty,min=0,max=2147483647"`
}

func (p UpdateProductSoldRequest) Apply(ps *ProductSold) {
	if p.RevenueID != nil {
		ps.RevenueID = *p.RevenueID
	}
	if p.ProductName != nil {
		ps.ProductName = *p.ProductName
	}
	if p.Quantity != nil {
		ps.Quantity = *p.Quantity
	}
}

type ProductSoldResponse struct {
	ID          int64  `json:"id_venda"`
	RevenueID   int64  `json:"id_faturamento"`
	ProductName string `json:"nome_produto"`
	Quantity    int    `json:"produtos_vendidos"`
}

func ToProductSoldResponse(ps *ProductSold) ProductSoldResponse {
	return ProductSoldResponse{
		ID:          ps.ID,
		RevenueID:   ps.RevenueID,
		ProductName: ps.ProductName,
		Quantity:    ps.Quantity,
	}
}

func ToProductSoldResponseList(sales []ProductSold) []ProductSoldResponse {
	responses := make([]ProductSoldResponse, 0, len(sales))
	for _, ps := range sales {
		responses = append(responses, ToProductSoldResponse(&ps))
	}
	return responses
}
