package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	"personnel/pkg/platform/httputil"
)

// HandleCreateUnit handles POST /units.
func (h *Handler) HandleCreateUnit(w http.ResponseWriter, r *http.Request) {
	in, err := httputil.DecodeJSON[models.UnitInput](w, r)
	if err != nil {
		h.writeError(w, r, "decode unit request failed", err)
		return
	}
	u, err := h.service.CreateUnit(r.Context(), *in)
	if err != nil {
		h.writeError(w, r, "create unit failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) HandleListUnits(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, "invalid pagination", err)
		return
	}
	result, err := h.service.ListUnits(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list units failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleGetUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := id.ParseUnitID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid unit id", err)
		return
	}
	u, err := h.service.GetUnit(r.Context(), unitID)
	if err != nil {
		h.writeError(w, r, "get unit failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) HandleUpdateUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := id.ParseUnitID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid unit id", err)
		return
	}
	changes, err := httputil.DecodeJSON[models.UnitChanges](w, r)
	if err != nil {
		h.writeError(w, r, "decode unit update failed", err)
		return
	}
	u, err := h.service.UpdateUnit(r.Context(), unitID, *changes)
	if err != nil {
		h.writeError(w, r, "update unit failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

// HandleCreateCity handles POST /cities.
func (h *Handler) HandleCreateCity(w http.ResponseWriter, r *http.Request) {
	in, err := httputil.DecodeJSON[models.CityInput](w, r)
	if err != nil {
		h.writeError(w, r, "decode city request failed", err)
		return
	}
	c, err := h.service.CreateCity(r.Context(), *in)
	if err != nil {
		h.writeError(w, r, "create city failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) HandleListCities(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, "invalid pagination", err)
		return
	}
	result, err := h.service.ListCities(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list cities failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleGetCity(w http.ResponseWriter, r *http.Request) {
	cityID, err := id.ParseCityID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid city id", err)
		return
	}
	c, err := h.service.GetCity(r.Context(), cityID)
	if err != nil {
		h.writeError(w, r, "get city failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}
