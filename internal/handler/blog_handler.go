package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"blogapp/internal/middleware"
	"blogapp/internal/service"
)

type CreateBlogRequest struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Author   string          `json:"author"`
	Date     *time.Time      `json:"date"`
	Content  json.RawMessage `json:"content"`
	Image    string          `json:"image"`
	Images   []string        `json:"images"`
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
		return
	}

	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	blog, err := h.BlogService.Create(r.Context(), requesterID, service.CreateBlogRequest{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Author:   req.Author,
		Date:     req.Date,
		Content:  req.Content,
		Image:    req.Image,
		Images:   req.Images,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, blog, http.StatusCreated)
}

func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.ListAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handlers) GetMyBlogs(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
		return
	}

	blogs, err := h.BlogService.ListMine(r.Context(), requesterID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]

	var viewerID *string
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	blog, err := h.BlogService.GetByID(r.Context(), blogID, viewerID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, blog, http.StatusOK)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
		return
	}

	blogID := mux.Vars(r)["id"]

	if err := h.BlogService.Delete(r.Context(), requesterID, blogID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Blog deleted successfully"}, http.StatusOK)
}
