package order

import (
	"context"
	"regexp"
	"strings"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

var (
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{1,4}[-\s]?[0-9]{1,15}$`)
)

type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, input CustomerInput, userID *int) (*Order, error)
	CancelOrder(ctx context.Context, orderNumber string) error
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	ListByUser(ctx context.Context, userID int) ([]Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PlaceOrder validates the customer details and converts the session's cart
// into an order. The cart is cleared on success and retained on any failure.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, input CustomerInput, userID *int) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	if !validCustomer(input) {
		log.Warn("invalid customer details")
		return nil, ErrInvalidCustomer
	}

	orderNumber := GenerateOrderNumber()
	log = log.With(zap.String("order_number", orderNumber))

	o, err := s.repo.CreateFromCart(ctx, PlaceOrderParams{
		SessionID:   sessionID,
		OrderNumber: orderNumber,
		Customer:    input,
		UserID:      userID,
	})
	if err != nil {
		log.Error("order placement failed", zap.Error(err))
		return nil, err
	}

	log.Info("order placed",
		zap.Int("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
	)

	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNotFound
	}
	return s.repo.CancelByNumber(ctx, orderNumber)
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	if orderNumber == "" {
		return nil, ErrOrderNotFound
	}
	return s.repo.GetByNumber(ctx, orderNumber)
}

func (s *service) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func validCustomer(input CustomerInput) bool {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Surname) == "" {
		return false
	}
	return emailRegex.MatchString(input.Email) && phoneRegex.MatchString(input.Phone)
}
