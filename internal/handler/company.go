// internal/handler/company.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/service"
)

type CompanyHandler struct {
	service *service.CompanyService
}

func NewCompanyHandler(service *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	company, err := h.service.Get(r.Context(), id.CompanyID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, company)
}

func (h *CompanyHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.CompanyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	company, err := h.service.Rename(r.Context(), id.CompanyID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, company)
}

func (h *CompanyHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	users, err := h.service.ListUsers(r.Context(), id.CompanyID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, users)
}

func (h *CompanyHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	userID, ok := urlID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), id.CompanyID, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, user)
}

func (h *CompanyHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	userID, ok := urlID(w, r, "userID")
	if !ok {
		return
	}

	var input service.UserUpdateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id.CompanyID, userID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, user)
}
