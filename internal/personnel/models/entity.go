package models

// Entity kinds named in domain errors.
const (
	EntityPerson         = "person"
	EntityUnit           = "unit"
	EntityCity           = "city"
	EntityAssignment     = "assignment"
	EntityPermanentStaff = "permanent_staff"
	EntityTemporaryStaff = "temporary_staff"
)
