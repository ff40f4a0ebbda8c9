package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"temanikan/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

var ErrEmailTaken = errors.New("email already registered")

const (
	insertUserSQL        = `INSERT INTO users (name, email, role, avatar, password_hash) VALUES (?, ?, ?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, name, email, role, avatar, password_hash FROM users WHERE email = ?`
)

// Create inserts a registered account and returns its ID.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	email := normalizeEmail(u.Email)
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Name, email, string(u.Role), u.Avatar, u.PasswordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return 0, fmt.Errorf("insert user %q: %w", email, ErrEmailTaken)
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches an account by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = normalizeEmail(email)
	var (
		u      models.User
		role   string
		avatar sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Name, &u.Email, &role, &avatar, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	u.Role = models.Role(role)
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	return &u, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
