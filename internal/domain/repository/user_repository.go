package repository

import (
	"context"
	"errors"

	"github.com/gahalberto/ImobiManager/internal/domain/entity"
)

// Storage-level sentinel errors. Implementations translate driver errors into
// these so callers never branch on driver types.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository defines user lookup and creation against persistent storage.
type UserRepository interface {
	// Create inserts the user and fills ID/CreatedAt. A unique-violation on
	// email returns ErrDuplicate; the database constraint is authoritative
	// even when callers pre-check.
	Create(ctx context.Context, u *entity.User) error
	// GetByEmail returns ErrNotFound when no account uses the email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
