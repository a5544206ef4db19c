package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"edl-backend/internal/storage"

	"github.com/gorilla/mux"
)

// BlobHandler serves the upload/download endpoints backing the local blob
// store: signature images, report photos and generated documents.
type BlobHandler struct {
	blobs storage.BlobStore
}

func NewBlobHandler(blobs storage.BlobStore) *BlobHandler {
	return &BlobHandler{blobs: blobs}
}

func (h *BlobHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "Missing blob key", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "text/html") {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	url, err := h.blobs.Save(r.Context(), key, r.Body)
	if err != nil {
		http.Error(w, "Failed to save blob", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *BlobHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "Missing blob key", http.StatusBadRequest)
		return
	}

	file, err := h.blobs.Open(key)
	if err != nil {
		http.Error(w, "Blob not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".html":
		contentType = "text/html; charset=utf-8"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
