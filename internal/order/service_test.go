package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateFromCart(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) CancelByNumber(ctx context.Context, orderNumber string) error {
	args := m.Called(ctx, orderNumber)
	return args.Error(0)
}

func (m *MockRepository) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetByUserID(ctx context.Context, userID int) ([]Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func validInput() CustomerInput {
	return CustomerInput{
		Name:    "Jan",
		Surname: "Novak",
		Email:   "jan.novak@example.com",
		Phone:   "+420123456789",
	}
}

func TestService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CreateFromCart", ctx, mock.MatchedBy(func(p PlaceOrderParams) bool {
			return p.SessionID == "sess-1" &&
				p.Customer == validInput() &&
				orderNumberPattern.MatchString(p.OrderNumber)
		})).Return(&Order{ID: 101, TotalPrice: 23.0}, nil)

		o, err := svc.PlaceOrder(ctx, "sess-1", validInput(), nil)
		assert.NoError(t, err)
		assert.Equal(t, 101, o.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidCustomer", func(t *testing.T) {
		cases := []struct {
			name  string
			mut   func(*CustomerInput)
		}{
			{"EmptyName", func(c *CustomerInput) { c.Name = "  " }},
			{"EmptySurname", func(c *CustomerInput) { c.Surname = "" }},
			{"BadEmail", func(c *CustomerInput) { c.Email = "not-an-email" }},
			{"BadPhone", func(c *CustomerInput) { c.Phone = "phone" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				mockRepo := new(MockRepository)
				svc := NewService(mockRepo)

				input := validInput()
				tc.mut(&input)

				_, err := svc.PlaceOrder(ctx, "sess-1", input, nil)
				assert.ErrorIs(t, err, ErrInvalidCustomer)
				mockRepo.AssertNotCalled(t, "CreateFromCart", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CreateFromCart", ctx, mock.Anything).Return(nil, ErrEmptyCart)

		_, err := svc.PlaceOrder(ctx, "sess-1", validInput(), nil)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
}

func TestService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("CancelByNumber", ctx, "OBJABCDEFGH12CZ").Return(nil)

		err := svc.CancelOrder(ctx, "OBJABCDEFGH12CZ")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyNumber", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		err := svc.CancelOrder(ctx, "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
		mockRepo.AssertNotCalled(t, "CancelByNumber", mock.Anything, mock.Anything)
	})
}

func TestService_GetByNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetByNumber", ctx, "OBJABCDEFGH12CZ").
			Return(&Order{ID: 101, OrderNumber: "OBJABCDEFGH12CZ"}, nil)

		o, err := svc.GetByNumber(ctx, "OBJABCDEFGH12CZ")
		assert.NoError(t, err)
		assert.Equal(t, "OBJABCDEFGH12CZ", o.OrderNumber)
	})

	t.Run("EmptyNumber", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.GetByNumber(ctx, "")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
