// internal/handler/part.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/service"
)

type PartHandler struct {
	service *service.PartService
}

func NewPartHandler(service *service.PartService) *PartHandler {
	return &PartHandler{service: service}
}

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.PartInput
	if !decodeJSON(w, r, &input) {
		return
	}

	part, err := h.service.Create(r.Context(), id.CompanyID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusCreated, part)
}

func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	parts, err := h.service.List(r.Context(), id.CompanyID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, parts)
}

func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	partID, ok := urlID(w, r, "partID")
	if !ok {
		return
	}

	part, err := h.service.Get(r.Context(), id.CompanyID, partID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, part)
}

func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	partID, ok := urlID(w, r, "partID")
	if !ok {
		return
	}

	var input service.PartInput
	if !decodeJSON(w, r, &input) {
		return
	}

	part, err := h.service.Update(r.Context(), id.CompanyID, partID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, part)
}

func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	partID, ok := urlID(w, r, "partID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id.CompanyID, partID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
