package domain

import (
	"strconv"
	"strings"

	dErrors "personnel/pkg/domain-errors"
)

// Typed identifiers keep a person id from being passed where a unit id is
// expected. All are positive database serials.
type (
	PersonID     int64
	UnitID       int64
	AssignmentID int64
	CityID       int64
)

func (id PersonID) String() string     { return strconv.FormatInt(int64(id), 10) }
func (id UnitID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id AssignmentID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id CityID) String() string       { return strconv.FormatInt(int64(id), 10) }

// ParsePersonID parses a path or query parameter into a PersonID.
func ParsePersonID(s string) (PersonID, error) {
	v, err := parseSerial(s, "person id")
	return PersonID(v), err
}

// ParseUnitID parses a path or query parameter into a UnitID.
func ParseUnitID(s string) (UnitID, error) {
	v, err := parseSerial(s, "unit id")
	return UnitID(v), err
}

// ParseAssignmentID parses a path or query parameter into an AssignmentID.
func ParseAssignmentID(s string) (AssignmentID, error) {
	v, err := parseSerial(s, "assignment id")
	return AssignmentID(v), err
}

// ParseCityID parses a path or query parameter into a CityID.
func ParseCityID(s string) (CityID, error) {
	v, err := parseSerial(s, "city id")
	return CityID(v), err
}

func parseSerial(s, label string) (int64, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidRequest, label+" is required")
	}
	if strings.TrimSpace(s) != s {
		return 0, dErrors.New(dErrors.CodeInvalidRequest, "invalid "+label)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidRequest, "invalid "+label)
	}
	return v, nil
}
