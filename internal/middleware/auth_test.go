package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(tm *auth.TokenManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Authenticate(tm))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		id, _ := middleware.IdentityFrom(r.Context())
		w.Write([]byte(id.Email))
	})
	r.With(middleware.CompanyScope).Get("/companies/{companyID}/assets", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)
	router := newRouter(tm)

	token, _, err := tm.Generate(uuid.New(), uuid.New(), "ada@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "bearer header", header: "Bearer " + token, status: http.StatusOK},
		{name: "cookie", cookie: token, status: http.StatusOK},
		{name: "missing", status: http.StatusUnauthorized},
		{name: "malformed header", header: "Token " + token, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "ada@example.com", rec.Body.String())
			} else {
				assert.JSONEq(t, `{"ok":false,"error":"`+errorMessage(tt.header)+`"}`, rec.Body.String())
			}
		})
	}
}

func errorMessage(header string) string {
	switch {
	case header == "":
		return "Authentication required"
	case len(header) > 7 && header[:7] == "Bearer ":
		return "Invalid token"
	default:
		return "Invalid authorization header"
	}
}

func TestCompanyScope(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 15*time.Minute, time.Hour)
	router := newRouter(tm)

	companyID := uuid.New()
	token, _, err := tm.Generate(uuid.New(), companyID, "ada@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		company string
		status  int
	}{
		{name: "own company", company: companyID.String(), status: http.StatusNoContent},
		{name: "other company", company: uuid.NewString(), status: http.StatusForbidden},
		{name: "invalid id", company: "not-a-uuid", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/companies/"+tt.company+"/assets", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := middleware.Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Internal server error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	h := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short and stout")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pot", nil))

	assert.Contains(t, logs.String(), `"status":418`)
	assert.Contains(t, logs.String(), `"path":"/pot"`)
}
