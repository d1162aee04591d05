// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"ghanalingo/internal/feature/auth/domain/entity"
	"ghanalingo/internal/feature/auth/usecase"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint
// failure.
const uniqueViolation = "23505"

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm for the given
// connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Unique-constraint violations are classified
// by column so the caller can tell a duplicate email (final) from a
// username collision (retryable).
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if col, ok := uniqueViolationColumn(err); ok {
			switch col {
			case "email":
				return usecase.ErrEmailTaken
			case "username":
				return usecase.ErrUsernameTaken
			}
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByUsername retrieves a user by username.
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// uniqueViolationColumn names the column whose unique constraint
// rejected the statement. Postgres reports SQLSTATE 23505 with the
// constraint name; SQLite (used by the in-memory test database) spells
// the column out in the message.
func uniqueViolationColumn(err error) (string, bool) {
	var pgErr *pgconn.PgError
	var msg string
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		msg = pgErr.ConstraintName + " " + pgErr.Detail
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		msg = err.Error()
	default:
		return "", false
	}

	switch {
	case strings.Contains(msg, "email"):
		return "email", true
	case strings.Contains(msg, "username"):
		return "username", true
	}
	return "", false
}
