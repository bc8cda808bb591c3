package order

import "time"

// Customer is created fresh for every placed order; it is deleted again
// when the order is cancelled.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	UserID  *int   `json:"user_id,omitempty"`
}

type Order struct {
	ID          int         `json:"id"`
	CustomerID  int         `json:"customer_id"`
	OrderNumber string      `json:"order_number"`
	OrderDate   time.Time   `json:"order_date"`
	TotalPrice  float64     `json:"total_price"`
	Customer    *Customer   `json:"customer,omitempty"`
	Lines       []OrderLine `json:"lines,omitempty"`
}

// OrderLine carries the price and name the product had at placement time.
type OrderLine struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ProductName string  `json:"product_name"`
}

type CustomerInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}
