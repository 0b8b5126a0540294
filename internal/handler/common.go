// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/sarpa/internal/domain"
	"github.com/dangerclosesec/sarpa/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	BaseResponse
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type DataResponse struct {
	BaseResponse
	Data interface{} `json:"data"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string, details ...string) {
	respondWithJSON(w, code, ErrorResponse{Error: message, Details: details})
}

// respondWithData wraps payload in the success envelope
func respondWithData(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, DataResponse{BaseResponse: BaseResponse{Ok: true}, Data: payload})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// handleError maps service errors onto status codes. Unknown errors are
// logged and answered with a generic message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithError(w, http.StatusBadRequest, "Validation failed", verr.Errors...)
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnsupportedUploadType):
		respondWithError(w, http.StatusBadRequest, "Unsupported file type")
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Access denied")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		respondWithError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrStorageNotConfigured):
		respondWithError(w, http.StatusServiceUnavailable, "File uploads are not configured")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"requestID", chimw.GetReqID(r.Context()),
		)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func notFoundMessage(err error) string {
	for _, known := range []error{
		domain.ErrCompanyNotFound,
		domain.ErrUserNotFound,
		domain.ErrAssetNotFound,
		domain.ErrPartNotFound,
		domain.ErrPreventiveMaintenanceNotFound,
		domain.ErrWorkOrderNotFound,
	} {
		if errors.Is(err, known) {
			msg := known.Error()
			return strings.ToUpper(msg[:1]) + msg[1:]
		}
	}
	return "Not found"
}

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// urlID parses a uuid route parameter. Malformed ids answer 404 since no row
// can match them.
func urlID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Not found")
		return uuid.Nil, false
	}
	return id, true
}

// identity returns the authenticated caller; routes using it sit behind
// middleware.Authenticate.
func identity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
	}
	return id, ok
}
