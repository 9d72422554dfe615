package handler

import (
	"net/http"
	"strconv"

	"personnel/internal/personnel/models"
	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
	"personnel/pkg/optional"
)

// CreateAssignmentRequest is the HTTP request body for POST /assignments.
// Exactly one of personId or person must be present.
type CreateAssignmentRequest struct {
	PersonID   optional.Value[id.PersonID] `json:"personId"`
	Person     *models.PersonInput         `json:"person"`
	UnitID     id.UnitID                   `json:"unitId"`
	AssignedOn models.Date                 `json:"assignedOn"`
	RemovedOn  models.Date                 `json:"removedOn"`
	OrderRef   string                      `json:"orderRef"`
}

func (r *CreateAssignmentRequest) toModel() models.CreateAssignmentRequest {
	return models.CreateAssignmentRequest{
		PersonID:   r.PersonID,
		Person:     r.Person,
		UnitID:     r.UnitID,
		AssignedOn: r.AssignedOn,
		RemovedOn:  r.RemovedOn,
		OrderRef:   r.OrderRef,
	}
}

// UpdateAssignmentRequest is the HTTP request body for PUT /assignments/{id}.
// Omitted keys keep their stored values.
type UpdateAssignmentRequest struct {
	PersonID   optional.Value[id.PersonID] `json:"personId"`
	Person     *models.PersonChanges       `json:"person"`
	UnitID     optional.Value[id.UnitID]   `json:"unitId"`
	AssignedOn optional.Value[models.Date] `json:"assignedOn"`
	RemovedOn  optional.Value[models.Date] `json:"removedOn"`
	OrderRef   optional.Value[string]      `json:"orderRef"`
}

func (r *UpdateAssignmentRequest) toModel() models.UpdateAssignmentRequest {
	return models.UpdateAssignmentRequest{
		PersonID:   r.PersonID,
		Person:     r.Person,
		UnitID:     r.UnitID,
		AssignedOn: r.AssignedOn,
		RemovedOn:  r.RemovedOn,
		OrderRef:   r.OrderRef,
	}
}

type CreatePermanentStaffRequest struct {
	PersonID           optional.Value[id.PersonID] `json:"personId"`
	Person             *models.PersonInput         `json:"person"`
	RegistrationNumber string                      `json:"registrationNumber"`
}

func (r *CreatePermanentStaffRequest) toModel() models.CreatePermanentStaffRequest {
	return models.CreatePermanentStaffRequest{
		PersonID:           r.PersonID,
		Person:             r.Person,
		RegistrationNumber: r.RegistrationNumber,
	}
}

type UpdatePermanentStaffRequest struct {
	PersonID           optional.Value[id.PersonID] `json:"personId"`
	Person             *models.PersonChanges       `json:"person"`
	RegistrationNumber optional.Value[string]      `json:"registrationNumber"`
}

func (r *UpdatePermanentStaffRequest) toModel() models.UpdatePermanentStaffRequest {
	return models.UpdatePermanentStaffRequest{
		PersonID:           r.PersonID,
		Person:             r.Person,
		RegistrationNumber: r.RegistrationNumber,
	}
}

type CreateTemporaryStaffRequest struct {
	PersonID     optional.Value[id.PersonID] `json:"personId"`
	Person       *models.PersonInput         `json:"person"`
	AdmittedOn   models.Date                 `json:"admittedOn"`
	TerminatedOn models.Date                 `json:"terminatedOn"`
}

func (r *CreateTemporaryStaffRequest) toModel() models.CreateTemporaryStaffRequest {
	return models.CreateTemporaryStaffRequest{
		PersonID:     r.PersonID,
		Person:       r.Person,
		AdmittedOn:   r.AdmittedOn,
		TerminatedOn: r.TerminatedOn,
	}
}

type UpdateTemporaryStaffRequest struct {
	PersonID     optional.Value[id.PersonID] `json:"personId"`
	Person       *models.PersonChanges       `json:"person"`
	AdmittedOn   optional.Value[models.Date] `json:"admittedOn"`
	TerminatedOn optional.Value[models.Date] `json:"terminatedOn"`
}

func (r *UpdateTemporaryStaffRequest) toModel() models.UpdateTemporaryStaffRequest {
	return models.UpdateTemporaryStaffRequest{
		PersonID:     r.PersonID,
		Person:       r.Person,
		AdmittedOn:   r.AdmittedOn,
		TerminatedOn: r.TerminatedOn,
	}
}

// parsePage reads page and pageSize from the query string, defaulting
// whichever is absent.
func parsePage(r *http.Request) (models.Page, error) {
	number, err := queryInt(r, "page", models.DefaultPage)
	if err != nil {
		return models.Page{}, err
	}
	size, err := queryInt(r, "pageSize", models.DefaultPageSize)
	if err != nil {
		return models.Page{}, err
	}
	return models.NewPage(number, size)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidRequest, key+" must be an integer")
	}
	return v, nil
}
