package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetAll"),
	)

	start := time.Now()

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Debug("product list fetched",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Product, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input NewProduct) (*Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name cannot be empty")
	}
	if input.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if input.Stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}

	return s.repo.Create(ctx, input)
}

func (s *service) Update(ctx context.Context, p Product) error {
	if p.ID <= 0 {
		return ErrNotFound
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if p.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if p.Stock < 0 {
		return errors.New("stock cannot be negative")
	}

	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
