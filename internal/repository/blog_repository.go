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

type blogRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewBlogRepository(db *sqlx.DB, timeout time.Duration) BlogRepository {
	return &blogRepository{db: db, timeout: timeout}
}

// blogRow carries a blog together with its owner projection from a joined
// select.
type blogRow struct {
	models.Blog
	OwnerName  string `db:"owner_name"`
	OwnerEmail string `db:"owner_email"`
}

func (row *blogRow) toBlog() *models.Blog {
	blog := row.Blog
	blog.Owner = &models.Owner{Name: row.OwnerName, Email: row.OwnerEmail}
	blog.Views = []models.BlogView{}
	return &blog
}

// Create inserts the blog and appends it to the owner's list in a single
// transaction, so a blog is never visible without its back-reference.
func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if blog.BlogID == "" {
		blog.BlogID = uuid.New().String()
	}

	now := time.Now()
	blog.CreatedAt = now
	blog.UpdatedAt = now
	if blog.Images == nil {
		blog.Images = pq.StringArray{}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("create blog", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO blogs (blog_id, user_id, title, subtitle, author, date, content, image, images, created_at, updated_at)
		VALUES (:blog_id, :user_id, :title, :subtitle, :author, :date, :content, :image, :images, :created_at, :updated_at)
	`

	if _, err := tx.NamedExecContext(ctx, query, blog); err != nil {
		return storeError("create blog", err)
	}

	pushQuery := `INSERT INTO user_blogs (user_id, blog_id) VALUES ($1, $2)`

	if _, err := tx.ExecContext(ctx, pushQuery, blog.UserID, blog.BlogID); err != nil {
		return storeError("push owned blog", err)
	}

	if err := tx.Commit(); err != nil {
		return storeError("create blog", err)
	}

	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, blogID string) (*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row blogRow

	query := `
		SELECT b.*, u.name AS owner_name, u.email AS owner_email
		FROM blogs b
		JOIN users u ON u.user_id = b.user_id
		WHERE b.blog_id = $1
	`

	err := r.db.GetContext(ctx, &row, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBlogNotFound
		}
		return nil, storeError("get blog by id", err)
	}

	blog := row.toBlog()

	if blog.Views, err = r.views(ctx, blogID); err != nil {
		return nil, err
	}

	return blog, nil
}

func (r *blogRepository) GetAll(ctx context.Context) ([]*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT b.*, u.name AS owner_name, u.email AS owner_email
		FROM blogs b
		JOIN users u ON u.user_id = b.user_id
		ORDER BY b.created_at DESC
	`

	var rows []blogRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, storeError("get all blogs", err)
	}

	return r.withViews(ctx, rows)
}

// GetByOwnerList resolves blogs through the owner's list rather than by the
// owner column, preserving the list's own ordering.
func (r *blogRepository) GetByOwnerList(ctx context.Context, userID string) ([]*models.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT b.*, u.name AS owner_name, u.email AS owner_email
		FROM user_blogs ub
		JOIN blogs b ON b.blog_id = ub.blog_id
		JOIN users u ON u.user_id = b.user_id
		WHERE ub.user_id = $1
		ORDER BY ub.position
	`

	var rows []blogRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, storeError("get blogs by owner list", err)
	}

	return r.withViews(ctx, rows)
}

// DeleteOwned deletes in one statement keyed on (blog_id, user_id), so a
// wrong owner is indistinguishable from a missing blog, and removes the
// owner's back-reference in the same transaction.
func (r *blogRepository) DeleteOwned(ctx context.Context, blogID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeError("delete blog", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM blogs WHERE blog_id = $1 AND user_id = $2`

	result, err := tx.ExecContext(ctx, query, blogID, userID)
	if err != nil {
		return storeError("delete blog", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("delete blog", err)
	}

	if rowsAffected == 0 {
		return models.ErrBlogNotFound
	}

	pullQuery := `DELETE FROM user_blogs WHERE blog_id = $1 AND user_id = $2`

	if _, err := tx.ExecContext(ctx, pullQuery, blogID, userID); err != nil {
		return storeError("pull owned blog", err)
	}

	viewsQuery := `DELETE FROM blog_views WHERE blog_id = $1`

	if _, err := tx.ExecContext(ctx, viewsQuery, blogID); err != nil {
		return storeError("delete blog views", err)
	}

	if err := tx.Commit(); err != nil {
		return storeError("delete blog", err)
	}

	return nil
}

func (r *blogRepository) AddView(ctx context.Context, blogID string, userID *string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO blog_views (view_id, blog_id, user_id, viewed_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), blogID, userID, time.Now())
	if err != nil {
		return storeError("add blog view", err)
	}

	return nil
}

func (r *blogRepository) views(ctx context.Context, blogID string) ([]models.BlogView, error) {
	views := []models.BlogView{}

	query := `SELECT * FROM blog_views WHERE blog_id = $1 ORDER BY viewed_at`

	if err := r.db.SelectContext(ctx, &views, query, blogID); err != nil {
		return nil, storeError("get blog views", err)
	}

	return views, nil
}

// withViews attaches view logs to a result set with one extra query.
func (r *blogRepository) withViews(ctx context.Context, rows []blogRow) ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0, len(rows))
	if len(rows) == 0 {
		return blogs, nil
	}

	blogIDs := make([]string, 0, len(rows))
	for i := range rows {
		blogIDs = append(blogIDs, rows[i].BlogID)
	}

	query := `SELECT * FROM blog_views WHERE blog_id = ANY($1) ORDER BY viewed_at`

	var views []models.BlogView
	if err := r.db.SelectContext(ctx, &views, query, pq.Array(blogIDs)); err != nil {
		return nil, storeError("get blog views", err)
	}

	byBlog := make(map[string][]models.BlogView, len(rows))
	for _, view := range views {
		byBlog[view.BlogID] = append(byBlog[view.BlogID], view)
	}

	for i := range rows {
		blog := rows[i].toBlog()
		if logged, ok := byBlog[blog.BlogID]; ok {
			blog.Views = logged
		}
		blogs = append(blogs, blog)
	}

	return blogs, nil
}
