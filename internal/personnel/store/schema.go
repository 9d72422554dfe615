package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schema string

// Constraint names declared in schema.sql. Services pass them to the
// violation translator so a failed write can name the entity involved.
const (
	ConstraintAssignmentPerson     = "assignments_person_id_fkey"
	ConstraintAssignmentUnit       = "assignments_unit_id_fkey"
	ConstraintPermanentStaffPKey   = "permanent_staff_pkey"
	ConstraintPermanentStaffRegNo  = "permanent_staff_registration_number_key"
	ConstraintPermanentStaffPerson = "permanent_staff_person_id_fkey"
	ConstraintTemporaryStaffPKey   = "temporary_staff_pkey"
	ConstraintTemporaryStaffPerson = "temporary_staff_person_id_fkey"
)

// ApplySchema creates any missing tables. It is safe to run on every start.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
