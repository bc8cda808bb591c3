package report

import (
	"context"
	"database/sql"
)

type Repository interface {
	CustomerTotals(ctx context.Context) ([]CustomerTotal, error)
	MostSoldProduct(ctx context.Context) (*ProductQuantity, error)
	HighestValueProduct(ctx context.Context) (*ProductValue, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CustomerTotals(ctx context.Context) ([]CustomerTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, COUNT(o.id), SUM(o.total_price)
		FROM customers c
		JOIN orders o ON c.id = o.customer_id
		GROUP BY c.name
		ORDER BY c.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []CustomerTotal
	for rows.Next() {
		var t CustomerTotal
		if err := rows.Scan(&t.CustomerName, &t.TotalOrders, &t.TotalRevenue); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}

func (r *repository) MostSoldProduct(ctx context.Context) (*ProductQuantity, error) {
	var p ProductQuantity
	err := r.db.QueryRowContext(ctx, `
		SELECT product_name, SUM(quantity) AS total_sold
		FROM order_lines
		GROUP BY product_name
		ORDER BY total_sold DESC
		LIMIT 1
	`).Scan(&p.ProductName, &p.TotalSold)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) HighestValueProduct(ctx context.Context) (*ProductValue, error) {
	var p ProductValue
	err := r.db.QueryRowContext(ctx, `
		SELECT product_name, MAX(quantity * unit_price) AS max_value
		FROM order_lines
		GROUP BY product_name
		ORDER BY max_value DESC
		LIMIT 1
	`).Scan(&p.ProductName, &p.MaxValue)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}
