package app

import (
	"log"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/repository"
	"blogapp/internal/service"
	"blogapp/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB, cfg.StoreTimeout)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
