package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Kinimary/belwest/internal/entity"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Users(ctx context.Context) ([]entity.User, error) {
	q := `SELECT id, username, email, role FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.User{}

	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) User(ctx context.Context, id int64) (entity.User, error) {
	q := `SELECT id, username, email, role FROM users WHERE id = $1`

	var u entity.User

	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrUserNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, u entity.User) (entity.User, error) {
	q := `INSERT INTO users (username, email, role) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(ctx, q, u.Username, u.Email, u.Role).Scan(&u.ID)
	if err != nil {
		return entity.User{}, err
	}

	return u, nil
}
