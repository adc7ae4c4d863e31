package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogapp/cmd/app"
	"blogapp/internal/config"
	handlers "blogapp/internal/handler"
	"blogapp/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)
	guard := middleware.NewAuthGuard(services.Auth, repo.User)

	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	router.Handle("/auth/me", guard.RequireAuth(http.HandlerFunc(handler.Me))).Methods(http.MethodGet)

	router.Handle("/blogs", guard.RequireAuth(http.HandlerFunc(handler.CreateBlog))).Methods(http.MethodPost)
	router.HandleFunc("/blogs", handler.GetBlogs).Methods(http.MethodGet)
	// /blogs/me must stay ahead of /blogs/{id}
	router.Handle("/blogs/me", guard.RequireAuth(http.HandlerFunc(handler.GetMyBlogs))).Methods(http.MethodGet)
	router.Handle("/blogs/{id}", guard.OptionalAuth(http.HandlerFunc(handler.GetBlog))).Methods(http.MethodGet)
	router.Handle("/blogs/{id}", guard.RequireAuth(http.HandlerFunc(handler.DeleteBlog))).Methods(http.MethodDelete)

	router.HandleFunc("/upload", handler.UploadImage).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
