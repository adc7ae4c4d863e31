package handlers

import (
	"fmt"
	"net/http"
)

// UploadImage accepts a multipart file and hands it to the image-hosting
// collaborator, returning the hosted URL.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("File too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Failed to parse upload", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.UploadService.Upload(r.Context(), header.Filename,
		header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"url": url}, http.StatusOK)
}
