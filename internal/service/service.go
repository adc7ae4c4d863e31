package service

import (
	"blogapp/internal/config"
	"blogapp/internal/repository"
	"blogapp/internal/storage"
)

type Service struct {
	Auth   AuthService
	Blog   BlogService
	Upload UploadService
}

func NewService(repo *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:   NewAuthService(repo.User, cfg),
		Blog:   NewBlogService(repo.Blog),
		Upload: NewUploadService(storage),
	}
}
