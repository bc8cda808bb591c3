package user

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) (User, error) {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, surname, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Name, u.Surname, u.Email, u.Password, u.Role).Scan(&u.ID)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", u.Email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, surname, email, password, role
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Password, &u.Role)

	return u, err
}
