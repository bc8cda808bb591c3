package cart

import (
	"context"
	"errors"

	"storefront-be/internal/product"
)

// Service defines the business logic for session carts.
type Service interface {
	Add(ctx context.Context, sessionID string, productID int) (*CartItem, error)
	Get(ctx context.Context, sessionID string) (*Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) error
	Remove(ctx context.Context, sessionID string, productID int) error
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Add puts one unit of a product into the cart. Adding a product that is
// already present increments its quantity; the resulting quantity is bounded
// by the product's current stock.
func (s *service) Add(ctx context.Context, sessionID string, productID int) (*CartItem, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	finalQty := 1
	if item != nil {
		finalQty = item.Quantity + 1
	}

	if finalQty > p.Stock {
		return nil, ErrInsufficientStock
	}

	if item == nil {
		return s.repo.CreateItem(ctx, CreateItemParams{
			SessionID:   sessionID,
			ProductID:   productID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    1,
		})
	}

	if err := s.repo.UpdateQuantity(ctx, sessionID, productID, finalQty); err != nil {
		return nil, err
	}
	item.Quantity = finalQty
	return item, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	items, err := s.repo.GetItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c := &Cart{Items: items}
	for _, item := range items {
		c.Total += item.UnitPrice * float64(item.Quantity)
	}

	return c, nil
}

// UpdateQuantity sets an absolute quantity for a cart line. Values outside
// [1, stock] are rejected without touching the line.
func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) error {
	if sessionID == "" {
		return errors.New("session ID is required")
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	return s.repo.UpdateQuantity(ctx, sessionID, productID, quantity)
}

func (s *service) Remove(ctx context.Context, sessionID string, productID int) error {
	if sessionID == "" {
		return errors.New("session ID is required")
	}
	return s.repo.Remove(ctx, sessionID, productID)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("session ID is required")
	}
	return s.repo.Clear(ctx, sessionID)
}
