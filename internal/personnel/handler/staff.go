package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "personnel/pkg/domain"
	"personnel/pkg/platform/httputil"
)

// HandleCreatePermanentStaff handles POST /permanent-staff.
func (h *Handler) HandleCreatePermanentStaff(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.DecodeJSON[CreatePermanentStaffRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode permanent staff request failed", err)
		return
	}
	staff, err := h.service.CreatePermanentStaff(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, "create permanent staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, staff)
}

func (h *Handler) HandleListPermanentStaff(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, "invalid pagination", err)
		return
	}
	result, err := h.service.ListPermanentStaff(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list permanent staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleGetPermanentStaff(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "personId"))
	if err != nil {
		h.writeError(w, r, "invalid person id", err)
		return
	}
	staff, err := h.service.GetPermanentStaff(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, "get permanent staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, staff)
}

func (h *Handler) HandleUpdatePermanentStaff(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "personId"))
	if err != nil {
		h.writeError(w, r, "invalid person id", err)
		return
	}
	req, err := httputil.DecodeJSON[UpdatePermanentStaffRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode permanent staff update failed", err)
		return
	}
	staff, err := h.service.UpdatePermanentStaff(r.Context(), personID, req.toModel())
	if err != nil {
		h.writeError(w, r, "update permanent staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, staff)
}

// HandleCreateTemporaryStaff handles POST /temporary-staff.
func (h *Handler) HandleCreateTemporaryStaff(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.DecodeJSON[CreateTemporaryStaffRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode temporary staff request failed", err)
		return
	}
	staff, err := h.service.CreateTemporaryStaff(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, "create temporary staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, staff)
}

func (h *Handler) HandleListTemporaryStaff(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, "invalid pagination", err)
		return
	}
	result, err := h.service.ListTemporaryStaff(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list temporary staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) HandleGetTemporaryStaff(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "personId"))
	if err != nil {
		h.writeError(w, r, "invalid person id", err)
		return
	}
	staff, err := h.service.GetTemporaryStaff(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, "get temporary staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, staff)
}

func (h *Handler) HandleUpdateTemporaryStaff(w http.ResponseWriter, r *http.Request) {
	personID, err := id.ParsePersonID(chi.URLParam(r, "personId"))
	if err != nil {
		h.writeError(w, r, "invalid person id", err)
		return
	}
	req, err := httputil.DecodeJSON[UpdateTemporaryStaffRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode temporary staff update failed", err)
		return
	}
	staff, err := h.service.UpdateTemporaryStaff(r.Context(), personID, req.toModel())
	if err != nil {
		h.writeError(w, r, "update temporary staff failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, staff)
}
