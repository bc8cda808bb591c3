package importer

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"storefront-be/internal/category"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrMissingColumns = errors.New("csv is missing required columns")
	ErrInvalidRow     = errors.New("csv row has invalid values")
)

// row is one validated product line from the import file.
type row struct {
	CategoryName string
	Name         string
	Price        float64
	Stock        int
}

type Service interface {
	Import(ctx context.Context, r io.Reader) (int, error)
}

type service struct {
	db         *sql.DB
	categories category.Repository
}

func NewService(db *sql.DB, categories category.Repository) Service {
	return &service{db: db, categories: categories}
}

// Import reads a catalog CSV (header category_name,name,price,stock) and
// inserts its products in one transaction, creating unknown categories on
// the fly. The whole file is validated before anything is written; any
// failure rolls the transaction back.
func (s *service) Import(ctx context.Context, r io.Reader) (int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Import"),
	)

	rows, err := parse(r)
	if err != nil {
		log.Warn("csv validation failed", zap.Error(err))
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	for i, rec := range rows {
		categoryID, err := s.categories.GetOrCreateTx(ctx, tx, rec.CategoryName)
		if err != nil {
			log.Error("failed to resolve category",
				zap.Int("row", i+1),
				zap.String("category", rec.CategoryName),
				zap.Error(err),
			)
			return 0, err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (name, price, stock, category_id)
			VALUES ($1, $2, $3, $4)
		`, rec.Name, rec.Price, rec.Stock, categoryID); err != nil {
			log.Error("failed to insert product",
				zap.Int("row", i+1),
				zap.String("name", rec.Name),
				zap.Error(err),
			)
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit import transaction", zap.Error(err))
		return 0, err
	}

	committed = true
	log.Info("catalog import committed", zap.Int("rows", len(rows)))

	return len(rows), nil
}

// parse reads and validates the whole file up front so a bad row can never
// leave a partial import behind.
func parse(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, ErrMissingColumns
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"category_name", "name", "price", "stock"} {
		if _, ok := cols[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	var rows []row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRow, line, err)
		}

		price, err := strconv.ParseFloat(record[cols["price"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad price %q", ErrInvalidRow, line, record[cols["price"]])
		}

		stock, err := strconv.Atoi(record[cols["stock"]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad stock %q", ErrInvalidRow, line, record[cols["stock"]])
		}

		rows = append(rows, row{
			CategoryName: record[cols["category_name"]],
			Name:         record[cols["name"]],
			Price:        price,
			Stock:        stock,
		})
	}

	return rows, nil
}
