package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// CTA run numbers are purely numeric (e.g. "417", "1225")
	runNumberPattern = regexp.MustCompile(`^[0-9]+$`)

	// Route codes are short alphabetic tokens (e.g. "red", "brn", "Y")
	routeCodePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// ValidateRunNumber validates that a run number is a plain decimal identifier
// within reasonable limits
func ValidateRunNumber(runNumber string) error {
	if runNumber == "" {
		return errors.New("run number cannot be empty")
	}

	if len(runNumber) > 10 {
		return errors.New("run number too long (max 10 characters)")
	}

	if !runNumberPattern.MatchString(runNumber) {
		return errors.New("run number must contain only digits")
	}

	return nil
}

// ValidateRouteCode validates a configured route identifier
func ValidateRouteCode(route string) error {
	if route == "" {
		return errors.New("route code cannot be empty")
	}

	if len(route) > 10 {
		return errors.New("route code too long (max 10 characters)")
	}

	if !routeCodePattern.MatchString(route) {
		return errors.New("route code contains invalid characters")
	}

	return nil
}
