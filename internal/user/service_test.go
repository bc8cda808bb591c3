package user

import (
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

func (m *MockRepository) Create(ctx context.Context, u User) (User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(u User) bool {
			return u.Email == "jan.novak@example.com" &&
				u.Role == RoleUser &&
				u.Password != "secret123" &&
				CheckPasswordHash("secret123", u.Password)
		})).Return(User{ID: 5, Email: "jan.novak@example.com", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, RegisterInput{
			Name:     "Jan",
			Surname:  "Novak",
			Email:    "jan.novak@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 5, u.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, _, err := svc.Register(ctx, RegisterInput{Email: " ", Password: "x"})
		assert.Error(t, err)

		_, _, err = svc.Register(ctx, RegisterInput{Email: "a@b.cz", Password: ""})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EmailExists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).
			Return(User{}, errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		_, _, err := svc.Register(ctx, RegisterInput{
			Email:    "jan.novak@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	stored := User{
		ID:       5,
		Email:    "jan.novak@example.com",
		Password: hash,
		Role:     RoleUser,
	}

	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "jan.novak@example.com").Return(stored, nil)

		token, u, err := svc.Login(ctx, "jan.novak@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 5, u.ID)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "ghost@example.com").
			Return(User{}, errors.New("sql: no rows in result set"))

		_, _, err := svc.Login(ctx, "ghost@example.com", "secret123")
		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, "jan.novak@example.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "jan.novak@example.com", "wrong")
		assert.EqualError(t, err, "invalid email or password")
	})
}
