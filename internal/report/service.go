package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Summary(ctx context.Context) (*SummaryReport, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Summary(ctx context.Context) (*SummaryReport, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Summary"),
	)

	start := time.Now()

	totals, err := s.repo.CustomerTotals(ctx)
	if err != nil {
		log.Error("failed to aggregate customer totals", zap.Error(err))
		return nil, err
	}

	mostSold, err := s.repo.MostSoldProduct(ctx)
	if err != nil {
		log.Error("failed to find most sold product", zap.Error(err))
		return nil, err
	}

	highest, err := s.repo.HighestValueProduct(ctx)
	if err != nil {
		log.Error("failed to find highest value product", zap.Error(err))
		return nil, err
	}

	log.Info("summary report generated",
		zap.Int("customers", len(totals)),
		zap.Duration("duration", time.Since(start)),
	)

	return &SummaryReport{
		CustomerTotals:      totals,
		MostSoldProduct:     mostSold,
		HighestValueProduct: highest,
	}, nil
}

// ExportCSV writes the summary as three stacked CSV sections, each with its
// own header line.
func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	summary, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Customer Name", "Total Orders", "Total Revenue"}); err != nil {
		return err
	}
	for _, t := range summary.CustomerTotals {
		if err := cw.Write([]string{
			t.CustomerName,
			strconv.Itoa(t.TotalOrders),
			fmt.Sprintf("%.2f", t.TotalRevenue),
		}); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Most Sold Product", "Quantity Sold"}); err != nil {
		return err
	}
	if p := summary.MostSoldProduct; p != nil {
		if err := cw.Write([]string{p.ProductName, strconv.Itoa(p.TotalSold)}); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Highest Value Product", "Maximum Value"}); err != nil {
		return err
	}
	if p := summary.HighestValueProduct; p != nil {
		if err := cw.Write([]string{p.ProductName, fmt.Sprintf("%.2f", p.MaxValue)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
