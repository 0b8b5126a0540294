// internal/handler/preventive_maintenance.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/service"
)

type PreventiveMaintenanceHandler struct {
	service *service.PreventiveMaintenanceService
}

func NewPreventiveMaintenanceHandler(service *service.PreventiveMaintenanceService) *PreventiveMaintenanceHandler {
	return &PreventiveMaintenanceHandler{service: service}
}

// Create stores a new schedule and, when asked, its first work order.
func (h *PreventiveMaintenanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.PMInput
	if !decodeJSON(w, r, &input) {
		return
	}

	pm, err := h.service.Create(r.Context(), id.CompanyID, id.UserID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusCreated, pm)
}

func (h *PreventiveMaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	pms, err := h.service.List(r.Context(), id.CompanyID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, pms)
}

func (h *PreventiveMaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	pmID, ok := urlID(w, r, "pmID")
	if !ok {
		return
	}

	pm, err := h.service.Get(r.Context(), id.CompanyID, pmID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, pm)
}

func (h *PreventiveMaintenanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	pmID, ok := urlID(w, r, "pmID")
	if !ok {
		return
	}

	var input service.PMInput
	if !decodeJSON(w, r, &input) {
		return
	}

	pm, err := h.service.Update(r.Context(), id.CompanyID, pmID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, pm)
}

func (h *PreventiveMaintenanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	pmID, ok := urlID(w, r, "pmID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id.CompanyID, pmID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
