// AngelaMos | 2026
// entity.go

package sale

// ProductSold records units of a product sold under one revenue entry.
type ProductSold struct {
	ID          int64  `db:"id"`
	RevenueID   int64  `db:"revenue_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
}
