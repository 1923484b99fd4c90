package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns nil when the user does not exist
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Create inserts a user; it fails with ErrDuplicate for a taken username
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)",
		u.Username, u.PasswordHash, now,
	)
	if isConstraintViolation(err) {
		return fmt.Errorf("user %s: %w", u.Username, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.CreatedAt = now
	return nil
}

// UpdatePassword replaces the password hash of username
func (r *UserRepository) UpdatePassword(ctx context.Context, username, hash string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE username = ?", hash, username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectAffected(res, "user "+username)
}
