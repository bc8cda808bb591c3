package report

// CustomerTotal aggregates order count and revenue per customer name.
type CustomerTotal struct {
	CustomerName string  `json:"customer_name"`
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ProductQuantity struct {
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

type ProductValue struct {
	ProductName string  `json:"product_name"`
	MaxValue    float64 `json:"max_value"`
}

// SummaryReport is the sales summary: per-customer order totals, the most
// sold product, and the highest-value product.
type SummaryReport struct {
	CustomerTotals      []CustomerTotal  `json:"customer_totals"`
	MostSoldProduct     *ProductQuantity `json:"most_sold_product,omitempty"`
	HighestValueProduct *ProductValue    `json:"highest_value_product,omitempty"`
}
