package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CustomerTotals(ctx context.Context) ([]CustomerTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CustomerTotal), args.Error(1)
}

func (m *MockRepository) MostSoldProduct(ctx context.Context) (*ProductQuantity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductQuantity), args.Error(1)
}

func (m *MockRepository) HighestValueProduct(ctx context.Context) (*ProductValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProductValue), args.Error(1)
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerTotals", ctx).Return([]CustomerTotal{
			{CustomerName: "Jan", TotalOrders: 2, TotalRevenue: 46.0},
		}, nil)
		mockRepo.On("MostSoldProduct", ctx).Return(&ProductQuantity{ProductName: "Widget", TotalSold: 12}, nil)
		mockRepo.On("HighestValueProduct", ctx).Return(&ProductValue{ProductName: "Gadget", MaxValue: 80.0}, nil)

		summary, err := svc.Summary(ctx)
		assert.NoError(t, err)
		assert.Len(t, summary.CustomerTotals, 1)
		assert.Equal(t, "Widget", summary.MostSoldProduct.ProductName)
		assert.Equal(t, "Gadget", summary.HighestValueProduct.ProductName)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerTotals", ctx).Return(nil, errors.New("db error"))

		_, err := svc.Summary(ctx)
		assert.Error(t, err)
	})
}

func TestService_ExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("Layout", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerTotals", ctx).Return([]CustomerTotal{
			{CustomerName: "Jan", TotalOrders: 2, TotalRevenue: 46.0},
			{CustomerName: "Petra", TotalOrders: 1, TotalRevenue: 9.5},
		}, nil)
		mockRepo.On("MostSoldProduct", ctx).Return(&ProductQuantity{ProductName: "Widget", TotalSold: 12}, nil)
		mockRepo.On("HighestValueProduct", ctx).Return(&ProductValue{ProductName: "Gadget", MaxValue: 80.0}, nil)

		var buf bytes.Buffer
		err := svc.ExportCSV(ctx, &buf)
		require.NoError(t, err)

		expected := "Customer Name,Total Orders,Total Revenue\n" +
			"Jan,2,46.00\n" +
			"Petra,1,9.50\n" +
			"\n" +
			"Most Sold Product,Quantity Sold\n" +
			"Widget,12\n" +
			"\n" +
			"Highest Value Product,Maximum Value\n" +
			"Gadget,80.00\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("EmptyReport", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CustomerTotals", ctx).Return([]CustomerTotal{}, nil)
		mockRepo.On("MostSoldProduct", ctx).Return(nil, nil)
		mockRepo.On("HighestValueProduct", ctx).Return(nil, nil)

		var buf bytes.Buffer
		err := svc.ExportCSV(ctx, &buf)
		require.NoError(t, err)

		expected := "Customer Name,Total Orders,Total Revenue\n" +
			"\n" +
			"Most Sold Product,Quantity Sold\n" +
			"\n" +
			"Highest Value Product,Maximum Value\n"
		assert.Equal(t, expected, buf.String())
	})
}
