package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/meepleworks/reviews-api/internal/errs"
	"github.com/meepleworks/reviews-api/internal/model"
)

// UserRepository reads the users table.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users in storage order.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByUsername returns one user, or 404 when no such user exists.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := r.db.QueryRow(ctx, `SELECT username, name, avatar_url FROM users WHERE username = $1`, username)

	var u model.User
	if err := row.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound("Resource not found")
		}
		return nil, err
	}
	return &u, nil
}
