package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"blogapp/internal/models"
	"blogapp/internal/repository"
)

type CreateBlogRequest struct {
	Title    string
	Subtitle string
	Author   string
	Date     *time.Time
	Content  json.RawMessage
	Image    string
	Images   []string
}

type BlogService interface {
	Create(ctx context.Context, requesterID string, req CreateBlogRequest) (*models.Blog, error)
	ListAll(ctx context.Context) ([]*models.Blog, error)
	ListMine(ctx context.Context, requesterID string) ([]*models.Blog, error)
	GetByID(ctx context.Context, blogID string, viewerID *string) (*models.Blog, error)
	Delete(ctx context.Context, requesterID, blogID string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

// emptyContent reports whether a raw content document is absent. Anything
// beyond non-emptiness is accepted as-is.
func emptyContent(content json.RawMessage) bool {
	trimmed := bytes.TrimSpace(content)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (s *blogService) Create(ctx context.Context, requesterID string, req CreateBlogRequest) (*models.Blog, error) {
	if req.Title == "" || emptyContent(req.Content) {
		return nil, models.ErrValidation
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	blog := &models.Blog{
		UserID:   requesterID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Author:   req.Author,
		Date:     date,
		Content:  req.Content,
		Image:    req.Image,
		Images:   pq.StringArray(req.Images),
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) ListAll(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.GetAll(ctx)
}

func (s *blogService) ListMine(ctx context.Context, requesterID string) ([]*models.Blog, error) {
	return s.blogRepo.GetByOwnerList(ctx, requesterID)
}

func (s *blogService) GetByID(ctx context.Context, blogID string, viewerID *string) (*models.Blog, error) {
	if _, err := uuid.Parse(blogID); err != nil {
		return nil, models.ErrInvalidID
	}

	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	// a failed view append must not fail the read
	if err := s.blogRepo.AddView(ctx, blogID, viewerID); err != nil {
		log.Printf("failed to record view for blog %s: %v", blogID, err)
	}

	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, requesterID, blogID string) error {
	if _, err := uuid.Parse(blogID); err != nil {
		return models.ErrInvalidID
	}

	return s.blogRepo.DeleteOwned(ctx, blogID, requesterID)
}
