// internal/handler/work_order.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/service"
)

type WorkOrderHandler struct {
	service *service.WorkOrderService
}

func NewWorkOrderHandler(service *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.WorkOrderInput
	if !decodeJSON(w, r, &input) {
		return
	}

	wo, err := h.service.Create(r.Context(), id.CompanyID, id.UserID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusCreated, wo)
}

// List accepts optional status and preventiveMaintenanceId query filters.
func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	wos, err := h.service.List(r.Context(), id.CompanyID, service.WorkOrderListInput{
		Status:                  query.Get("status"),
		PreventiveMaintenanceID: query.Get("preventiveMaintenanceId"),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, wos)
}

func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	woID, ok := urlID(w, r, "workOrderID")
	if !ok {
		return
	}

	wo, err := h.service.Get(r.Context(), id.CompanyID, woID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, wo)
}

func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	woID, ok := urlID(w, r, "workOrderID")
	if !ok {
		return
	}

	var input service.WorkOrderInput
	if !decodeJSON(w, r, &input) {
		return
	}

	wo, err := h.service.Update(r.Context(), id.CompanyID, woID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, wo)
}

func (h *WorkOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	woID, ok := urlID(w, r, "workOrderID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id.CompanyID, woID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
