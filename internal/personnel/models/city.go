package models

import (
	"strings"
	"unicode/utf8"

	id "personnel/pkg/domain"
	dErrors "personnel/pkg/domain-errors"
)

// City is a standalone municipality reference. Nothing links to it yet.
type City struct {
	ID        id.CityID `json:"id"`
	Name      string    `json:"name"`
	StateCode string    `json:"stateCode"`
}

type CityInput struct {
	Name      string `json:"name"`
	StateCode string `json:"stateCode"`
}

func (in *CityInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.StateCode = strings.ToUpper(strings.TrimSpace(in.StateCode))
}

func (in *CityInput) Validate() error {
	if in.Name == "" || utf8.RuneCountInString(in.Name) > 200 {
		return dErrors.New(dErrors.CodeInvalidRequest, "city name must be 1 to 200 characters")
	}
	if utf8.RuneCountInString(in.StateCode) != 2 {
		return dErrors.New(dErrors.CodeInvalidRequest, "city state code must be exactly 2 characters")
	}
	return nil
}
