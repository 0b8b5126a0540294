// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/sarpa/internal/middleware"
	"github.com/dangerclosesec/sarpa/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	refreshTokenCookie = "refresh_token"
	refreshCookiePath  = "/api/auth"
)

type AuthHandler struct {
	authService   *service.AuthService
	secureCookies bool
}

func NewAuthHandler(authService *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse carries both tokens; the refresh token is also set as an
// httpOnly cookie.
type AuthResponse struct {
	*service.AuthOutput
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.authService.Register(r.Context(), input, clientMeta(r))
	if err != nil {
		slog.InfoContext(r.Context(), "registration rejected", "error", err, "requestID", chimw.GetReqID(r.Context()))
		handleError(w, r, err)
		return
	}

	h.setSession(w, output)
	respondWithData(w, http.StatusCreated, authResponse(output))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.authService.Login(r.Context(), input, clientMeta(r))
	if err != nil {
		slog.InfoContext(r.Context(), "login rejected", "error", err, "requestID", chimw.GetReqID(r.Context()))
		handleError(w, r, err)
		return
	}

	h.setSession(w, output)
	respondWithData(w, http.StatusOK, authResponse(output))
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	plain, ok := refreshTokenFrom(w, r)
	if !ok {
		return
	}

	output, err := h.authService.Refresh(r.Context(), plain, clientMeta(r))
	if err != nil {
		h.clearSession(w)
		handleError(w, r, err)
		return
	}

	h.setSession(w, output)
	respondWithData(w, http.StatusOK, authResponse(output))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	plain, ok := refreshTokenFrom(w, r)
	if !ok {
		return
	}

	if err := h.authService.Logout(r.Context(), plain); err != nil {
		handleError(w, r, err)
		return
	}

	h.clearSession(w)
	respondWithData(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	user, err := h.authService.Me(r.Context(), id.UserID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, user)
}

func (h *AuthHandler) setSession(w http.ResponseWriter, output *service.AuthOutput) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    output.AccessToken,
		Path:     "/",
		Expires:  output.AccessTokenExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    output.RefreshToken,
		Path:     refreshCookiePath,
		Expires:  output.RefreshTokenExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSession(w http.ResponseWriter) {
	for name, path := range map[string]string{
		middleware.AccessTokenCookie: "/",
		refreshTokenCookie:           refreshCookiePath,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func authResponse(output *service.AuthOutput) AuthResponse {
	return AuthResponse{
		AuthOutput:            output,
		RefreshToken:          output.RefreshToken,
		RefreshTokenExpiresAt: output.RefreshTokenExpiresAt,
	}
}

// refreshTokenFrom prefers the JSON body and falls back to the cookie. An
// empty body is allowed.
func refreshTokenFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	defer r.Body.Close()

	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return "", false
	}
	if req.RefreshToken != "" {
		return req.RefreshToken, true
	}
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
		return cookie.Value, true
	}
	return "", true
}

func clientMeta(r *http.Request) service.ClientMeta {
	return service.ClientMeta{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}
