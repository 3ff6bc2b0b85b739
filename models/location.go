package models

import "strings"

// NormalizeLocation maps free-form country input to one of the two stored
// codes. Unrecognized (or empty) input returns "".
func NormalizeLocation(raw string) Location {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "JO", "JORDAN":
		return LocationJordan
	case "SA", "KSA", "SAUDI", "SAUDI ARABIA":
		return LocationSaudi
	default:
		return ""
	}
}
