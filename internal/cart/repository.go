package cart

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type CreateItemParams struct {
	SessionID   string
	ProductID   int
	ProductName string
	UnitPrice   float64
	Quantity    int
}

type Repository interface {
	GetItems(ctx context.Context, sessionID string) ([]CartItem, error)
	GetItem(ctx context.Context, sessionID string, productID int) (*CartItem, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) error
	Remove(ctx context.Context, sessionID string, productID int) error
	Clear(ctx context.Context, sessionID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetItems(ctx context.Context, sessionID string) ([]CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, product_id, product_name, unit_price, quantity, created_at, updated_at
		FROM cart_items
		WHERE session_id = $1
		ORDER BY created_at
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CartItem
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.ProductID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) GetItem(ctx context.Context, sessionID string, productID int) (*CartItem, error) {
	var item CartItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, session_id, product_id, product_name, unit_price, quantity, created_at, updated_at
		FROM cart_items
		WHERE session_id = $1 AND product_id = $2
	`, sessionID, productID).Scan(
		&item.ID,
		&item.SessionID,
		&item.ProductID,
		&item.ProductName,
		&item.UnitPrice,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.String("session_id", params.SessionID),
		zap.Int("product_id", params.ProductID),
	)

	item := CartItem{
		SessionID:   params.SessionID,
		ProductID:   params.ProductID,
		ProductName: params.ProductName,
		UnitPrice:   params.UnitPrice,
		Quantity:    params.Quantity,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (session_id, product_id, product_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`,
		params.SessionID,
		params.ProductID,
		params.ProductName,
		params.UnitPrice,
		params.Quantity,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Debug("cart item created", zap.Int("cart_item_id", item.ID))
	return &item, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE session_id = $2 AND product_id = $3
	`, quantity, sessionID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) Remove(ctx context.Context, sessionID string, productID int) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE session_id = $1 AND product_id = $2
	`, sessionID, productID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrLineNotFound
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	return err
}
