package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"blogapp/internal/models"
)

type userRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserRepository(db *sqlx.DB, timeout time.Duration) UserRepository {
	return &userRepository{db: db, timeout: timeout}
}

const uniqueViolation = pq.ErrorCode("23505")

func (r *userRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	user := &models.User{
		UserID:       uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Blogs:        []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO users (user_id, name, email, password_hash, created_at, updated_at)
		VALUES (:user_id, :name, :email, :password_hash, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		// the unique constraint is the second line of defense behind the
		// service's check-then-create
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, models.ErrDuplicateEmail
		}
		return nil, storeError("create user", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, storeError("get user by id", err)
	}

	if user.Blogs, err = r.ownedBlogIDs(ctx, user.UserID); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, storeError("get user by email", err)
	}

	if user.Blogs, err = r.ownedBlogIDs(ctx, user.UserID); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetOwnedBlogIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.ownedBlogIDs(ctx, userID)
}

func (r *userRepository) ownedBlogIDs(ctx context.Context, userID string) ([]string, error) {
	blogIDs := []string{}

	query := `SELECT blog_id FROM user_blogs WHERE user_id = $1 ORDER BY position`

	err := r.db.SelectContext(ctx, &blogIDs, query, userID)
	if err != nil {
		return nil, storeError("get owned blog ids", err)
	}

	return blogIDs, nil
}
