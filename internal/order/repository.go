package order

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type PlaceOrderParams struct {
	SessionID   string
	OrderNumber string
	Customer    CustomerInput
	UserID      *int
}

type Repository interface {
	CreateFromCart(ctx context.Context, params PlaceOrderParams) (*Order, error)
	CancelByNumber(ctx context.Context, orderNumber string) error
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	GetByUserID(ctx context.Context, userID int) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateFromCart turns the session's cart into a persisted order inside one
// transaction: customer row, order row, one line per cart entry, a stock
// decrement per product, and the cart rows removed. Any failure rolls the
// whole transaction back and leaves the cart untouched.
func (r *repository) CreateFromCart(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateFromCart"),
		zap.String("order_number", params.OrderNumber),
	)

	log.Debug("starting order transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	// 1. Load cart lines
	rows, err := tx.QueryContext(ctx, `
		SELECT product_id, product_name, unit_price, quantity
		FROM cart_items
		WHERE session_id = $1
		ORDER BY created_at
	`, params.SessionID)
	if err != nil {
		log.Error("failed to load cart", zap.Error(err))
		return nil, err
	}

	var lines []OrderLine
	var total float64
	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.UnitPrice, &l.Quantity); err != nil {
			rows.Close()
			return nil, err
		}
		total += l.UnitPrice * float64(l.Quantity)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	// 2. Insert customer
	customer := Customer{
		Name:    params.Customer.Name,
		Surname: params.Customer.Surname,
		Email:   params.Customer.Email,
		Phone:   params.Customer.Phone,
		UserID:  params.UserID,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (name, surname, email, phone, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		customer.Name,
		customer.Surname,
		customer.Email,
		customer.Phone,
		customer.UserID,
	).Scan(&customer.ID)
	if err != nil {
		log.Error("failed to insert customer", zap.Error(err))
		return nil, err
	}

	// 3. Insert order
	o := &Order{
		CustomerID:  customer.ID,
		OrderNumber: params.OrderNumber,
		TotalPrice:  total,
		Customer:    &customer,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, order_number, order_date, total_price)
		VALUES ($1, $2, CURRENT_DATE, $3)
		RETURNING id, order_date
	`, o.CustomerID, o.OrderNumber, o.TotalPrice).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 4. Insert order lines + decrement stock
	for i, l := range lines {
		// The conditional update is the stock reservation: zero rows
		// affected means another order got the stock first.
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, l.Quantity, l.ProductID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.Int("product_id", l.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			log.Warn("insufficient stock",
				zap.Int("product_id", l.ProductID),
				zap.Int("quantity", l.Quantity),
			)
			return nil, ErrInsufficientStock
		}

		lines[i].OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_lines (order_id, product_id, quantity, unit_price, product_name)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, o.ID, l.ProductID, l.Quantity, l.UnitPrice, l.ProductName).Scan(&lines[i].ID)
		if err != nil {
			log.Error("failed to insert order line",
				zap.Int("line_index", i),
				zap.Error(err),
			)
			return nil, err
		}
	}
	o.Lines = lines

	// 5. Clear the cart
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cart_items WHERE session_id = $1
	`, params.SessionID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	log.Info("order transaction committed",
		zap.Int("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
		zap.Int("line_count", len(lines)),
	)

	return o, nil
}

// CancelByNumber restores stock for every line of the order, then removes
// the lines, the order, and its per-order customer row, all in one
// transaction.
func (r *repository) CancelByNumber(ctx context.Context, orderNumber string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CancelByNumber"),
		zap.String("order_number", orderNumber),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var orderID, customerID int
	err = tx.QueryRowContext(ctx, `
		SELECT id, customer_id FROM orders WHERE order_number = $1
	`, orderNumber).Scan(&orderID, &customerID)
	if err == sql.ErrNoRows {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT product_id, quantity FROM order_lines WHERE order_id = $1
	`, orderID)
	if err != nil {
		return err
	}

	type restore struct {
		productID int
		quantity  int
	}
	var restores []restore
	for rows.Next() {
		var re restore
		if err := rows.Scan(&re.productID, &re.quantity); err != nil {
			rows.Close()
			return err
		}
		restores = append(restores, re)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, re := range restores {
		if _, err := tx.ExecContext(ctx, `
			UPDATE products SET stock = stock + $1 WHERE id = $2
		`, re.quantity, re.productID); err != nil {
			log.Error("failed to restore stock",
				zap.Int("product_id", re.productID),
				zap.Error(err),
			)
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_lines WHERE order_id = $1`, orderID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, customerID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit cancel transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order cancelled",
		zap.Int("order_id", orderID),
		zap.Int("line_count", len(restores)),
	)

	return nil
}

func (r *repository) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var o Order
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT o.id, o.customer_id, o.order_number, o.order_date, o.total_price,
		       c.id, c.name, c.surname, c.email, c.phone
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.order_number = $1
	`, orderNumber).Scan(
		&o.ID, &o.CustomerID, &o.OrderNumber, &o.OrderDate, &o.TotalPrice,
		&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Customer = &c

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, product_name
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.ProductName); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}

	return &o, rows.Err()
}

func (r *repository) GetByUserID(ctx context.Context, userID int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.customer_id, o.order_number, o.order_date, o.total_price,
		       c.id, c.name, c.surname, c.email, c.phone
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE c.user_id = $1
		ORDER BY o.order_date DESC, o.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		var c Customer
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.OrderNumber, &o.OrderDate, &o.TotalPrice,
			&c.ID, &c.Name, &c.Surname, &c.Email, &c.Phone,
		); err != nil {
			return nil, err
		}
		o.Customer = &c
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
