package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/platform/httputil"
	"personnel/pkg/requestcontext"
)

// Service defines the personnel operations the HTTP surface exposes.
type Service interface {
	CreateAssignment(ctx context.Context, req models.CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignment(ctx context.Context, assignmentID id.AssignmentID) (*models.Assignment, error)
	ListAssignments(ctx context.Context, page models.Page) (*models.PageResult[*models.Assignment], error)
	UpdateAssignment(ctx context.Context, assignmentID id.AssignmentID, req models.UpdateAssignmentRequest) (*models.Assignment, error)

	CreatePermanentStaff(ctx context.Context, req models.CreatePermanentStaffRequest) (*models.PermanentStaff, error)
	GetPermanentStaff(ctx context.Context, personID id.PersonID) (*models.PermanentStaff, error)
	ListPermanentStaff(ctx context.Context, page models.Page) (*models.PageResult[*models.PermanentStaff], error)
	UpdatePermanentStaff(ctx context.Context, personID id.PersonID, req models.UpdatePermanentStaffRequest) (*models.PermanentStaff, error)

	CreateTemporaryStaff(ctx context.Context, req models.CreateTemporaryStaffRequest) (*models.TemporaryStaff, error)
	GetTemporaryStaff(ctx context.Context, personID id.PersonID) (*models.TemporaryStaff, error)
	ListTemporaryStaff(ctx context.Context, page models.Page) (*models.PageResult[*models.TemporaryStaff], error)
	UpdateTemporaryStaff(ctx context.Context, personID id.PersonID, req models.UpdateTemporaryStaffRequest) (*models.TemporaryStaff, error)

	CreateUnit(ctx context.Context, in models.UnitInput) (*models.Unit, error)
	GetUnit(ctx context.Context, unitID id.UnitID) (*models.Unit, error)
	ListUnits(ctx context.Context, page models.Page) (*models.PageResult[*models.Unit], error)
	UpdateUnit(ctx context.Context, unitID id.UnitID, changes models.UnitChanges) (*models.Unit, error)

	CreateCity(ctx context.Context, in models.CityInput) (*models.City, error)
	GetCity(ctx context.Context, cityID id.CityID) (*models.City, error)
	ListCities(ctx context.Context, page models.Page) (*models.PageResult[*models.City], error)
}

// Handler wires personnel endpoints to the personnel service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a personnel handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts personnel endpoints on the router. The caller is expected
// to have installed authentication on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/assignments", func(r chi.Router) {
		r.Post("/", h.HandleCreateAssignment)
		r.Get("/", h.HandleListAssignments)
		r.Get("/{id}", h.HandleGetAssignment)
		r.Put("/{id}", h.HandleUpdateAssignment)
	})
	r.Route("/permanent-staff", func(r chi.Router) {
		r.Post("/", h.HandleCreatePermanentStaff)
		r.Get("/", h.HandleListPermanentStaff)
		r.Get("/{personId}", h.HandleGetPermanentStaff)
		r.Put("/{personId}", h.HandleUpdatePermanentStaff)
	})
	r.Route("/temporary-staff", func(r chi.Router) {
		r.Post("/", h.HandleCreateTemporaryStaff)
		r.Get("/", h.HandleListTemporaryStaff)
		r.Get("/{personId}", h.HandleGetTemporaryStaff)
		r.Put("/{personId}", h.HandleUpdateTemporaryStaff)
	})
	r.Route("/units", func(r chi.Router) {
		r.Post("/", h.HandleCreateUnit)
		r.Get("/", h.HandleListUnits)
		r.Get("/{id}", h.HandleGetUnit)
		r.Put("/{id}", h.HandleUpdateUnit)
	})
	r.Route("/cities", func(r chi.Router) {
		r.Post("/", h.HandleCreateCity)
		r.Get("/", h.HandleListCities)
		r.Get("/{id}", h.HandleGetCity)
	})
}

// writeError logs and renders err. Unknown failures are logged at error
// level, domain failures at warn.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeUnknown {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"subject", requestcontext.Subject(ctx),
		"path", r.URL.Path,
		"error", err,
	)
	httputil.WriteError(w, err)
}

// HandleCreateAssignment handles POST /assignments.
func (h *Handler) HandleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.DecodeJSON[CreateAssignmentRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode assignment request failed", err)
		return
	}
	a, err := h.service.CreateAssignment(r.Context(), req.toModel())
	if err != nil {
		h.writeError(w, r, "create assignment failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

// HandleListAssignments handles GET /assignments?page=&pageSize=.
func (h *Handler) HandleListAssignments(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.writeError(w, r, "invalid pagination", err)
		return
	}
	result, err := h.service.ListAssignments(r.Context(), page)
	if err != nil {
		h.writeError(w, r, "list assignments failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleGetAssignment handles GET /assignments/{id}.
func (h *Handler) HandleGetAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := id.ParseAssignmentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid assignment id", err)
		return
	}
	a, err := h.service.GetAssignment(r.Context(), assignmentID)
	if err != nil {
		h.writeError(w, r, "get assignment failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

// HandleUpdateAssignment handles PUT /assignments/{id}.
func (h *Handler) HandleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := id.ParseAssignmentID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "invalid assignment id", err)
		return
	}
	req, err := httputil.DecodeJSON[UpdateAssignmentRequest](w, r)
	if err != nil {
		h.writeError(w, r, "decode assignment update failed", err)
		return
	}
	a, err := h.service.UpdateAssignment(r.Context(), assignmentID, req.toModel())
	if err != nil {
		h.writeError(w, r, "update assignment failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}
