package cart

import "time"

// CartItem is one line of a session cart. Price and name are snapshots
// taken when the product was first added.
type CartItem struct {
	ID          int       `json:"id"`
	SessionID   string    `json:"-"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
