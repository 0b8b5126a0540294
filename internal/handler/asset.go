// internal/handler/asset.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/sarpa/internal/service"
)

type AssetHandler struct {
	service *service.AssetService
}

func NewAssetHandler(service *service.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var input service.AssetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	asset, err := h.service.Create(r.Context(), id.CompanyID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusCreated, asset)
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	assets, err := h.service.List(r.Context(), id.CompanyID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, assets)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	assetID, ok := urlID(w, r, "assetID")
	if !ok {
		return
	}

	asset, err := h.service.Get(r.Context(), id.CompanyID, assetID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	assetID, ok := urlID(w, r, "assetID")
	if !ok {
		return
	}

	var input service.AssetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	asset, err := h.service.Update(r.Context(), id.CompanyID, assetID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithData(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	assetID, ok := urlID(w, r, "assetID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id.CompanyID, assetID); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
