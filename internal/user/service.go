package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Service interface {
	Register(ctx context.Context, input RegisterInput) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (string, User, error) {
	log := logger.FromCtx(ctx)

	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return "", User{}, errors.New("email and password are required")
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Password: hashed,
		Role:     RoleUser,
	})
	if err != nil {
		log.Error("failed to create user", zap.String("email", input.Email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", u.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug("email not found", zap.String("email", email))
		return "", User{}, errors.New("invalid email or password")
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("password mismatch", zap.String("email", email))
		return "", User{}, errors.New("invalid email or password")
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	return token, u, err
}
