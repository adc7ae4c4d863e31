package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"blogapp/internal/config"
	"blogapp/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	BlogService   service.BlogService
	UploadService service.UploadService
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		BlogService:   services.Blog,
		UploadService: services.Upload,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
