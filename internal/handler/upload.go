// internal/handler/upload.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/storage"
	"github.com/go-chi/chi/v5"
)

type UploadHandler struct {
	presigner *storage.Presigner
}

func NewUploadHandler(presigner *storage.Presigner) *UploadHandler {
	return &UploadHandler{presigner: presigner}
}

type PresignRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// Presign returns a URL the client PUTs the image to, and the URL it is later
// served from.
func (h *UploadHandler) Presign(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req PresignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	target, err := h.presigner.PresignUpload(r.Context(), id.CompanyID, req.Filename, req.ContentType)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, target)
}

// File redirects to a short-lived download URL for one of the caller's
// company's objects.
func (h *UploadHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	url, err := h.presigner.PresignView(r.Context(), id.CompanyID, chi.URLParam(r, "*"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}
