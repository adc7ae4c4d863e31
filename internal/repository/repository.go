package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"blogapp/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetOwnedBlogIDs(ctx context.Context, userID string) ([]string, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, blogID string) (*models.Blog, error)
	GetAll(ctx context.Context) ([]*models.Blog, error)
	GetByOwnerList(ctx context.Context, userID string) ([]*models.Blog, error)
	DeleteOwned(ctx context.Context, blogID, userID string) error
	AddView(ctx context.Context, blogID string, userID *string) error
}

type Repository struct {
	User UserRepository
	Blog BlogRepository
}

func NewRepository(db *sqlx.DB, timeout time.Duration) *Repository {
	return &Repository{
		User: NewUserRepository(db, timeout),
		Blog: NewBlogRepository(db, timeout),
	}
}

// storeError surfaces a blown store deadline as the retryable
// ErrStoreUnavailable; everything else is wrapped as-is.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, models.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
