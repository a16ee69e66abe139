// Package storeid translates between the two historical store identifier
// formats: the legacy "store_<n>" ids and the standard "STR-<epoch millis>"
// ids that replaced them. Unknown ids pass through unchanged.
package storeid

import (
	"regexp"
	"strings"
)

var standardPattern = regexp.MustCompile(`^STR-\d+$`)

// legacyToStandard maps legacy ids to their standard replacements.
var legacyToStandard = map[string]string{
	"store_1": "STR-1722255700000",
}

// standardToLegacy is the inverse mapping.
var standardToLegacy = map[string]string{
	"STR-1722255700000": "store_1",
}

// ToStandard converts a legacy store id to the standard format. Ids already
// in the standard format, and ids with no known mapping, are returned as is.
func ToStandard(id string) string {
	if standardPattern.MatchString(id) {
		return id
	}
	if mapped, ok := legacyToStandard[id]; ok {
		return mapped
	}
	return id
}

// ToLegacy converts a standard store id back to the legacy format when a
// mapping exists.
func ToLegacy(id string) string {
	if strings.HasPrefix(id, "store_") {
		return id
	}
	if mapped, ok := standardToLegacy[id]; ok {
		return mapped
	}
	return id
}

// IsStandard reports whether id is in the standard "STR-<digits>" format.
func IsStandard(id string) bool {
	return standardPattern.MatchString(id)
}
