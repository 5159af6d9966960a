package model

import "unicode/utf8"

const MaxNameLength = 20

const (
	CityNameRequired = "City name is required."
	AreaNameRequired = "Area name is required."
	NameTooLong      = "The text entered exceeds the maximum length."
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func ValidateCity(c *City) error {
	return validateName(c.name, CityNameRequired)
}

func ValidateArea(a *Area) error {
	return validateName(a.name, AreaNameRequired)
}

func validateName(name string, requiredMessage string) error {
	switch {
	case name == "":
		return &ValidationError{Field: "name", Message: requiredMessage}
	case utf8.RuneCountInString(name) > MaxNameLength:
		return &ValidationError{Field: "name", Message: NameTooLong}
	default:
		return nil
	}
}
