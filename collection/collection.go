// Package collection provides validated reads over a caller-supplied
// key→value map, typically a provider or plugin section decoded out of a
// config file. Unlike the settings accessor it owns no store: the map is
// the caller's, and every call validates exactly one entry of it.
package collection

import (
	"math"
	"strconv"
	"strings"

	"github.com/galaplate/settings/conferr"
)

// GetString returns the value stored under name. The name argument itself
// is what gets validated: an empty name must come with a usable default.
// A non-empty name whose key is missing from the map comes back as the
// empty string, unvalidated.
func GetString(values map[string]string, name string, def ...string) (string, error) {
	fallback := ""
	if len(def) > 0 {
		fallback = def[0]
	}

	if name == "" {
		if strings.TrimSpace(fallback) == "" {
			return "", conferr.Invalid("%s must have a value", name)
		}
		return fallback, nil
	}

	return values[name], nil
}

// GetBool reads a boolean entry. When the key is absent and a default was
// supplied the default wins; with no default the missing value falls
// through to the parse and fails as a non-boolean. Callers depend on the
// "<name> must be boolean" failure for absent keys, so the fall-through
// stays.
func GetBool(values map[string]string, name string, def ...bool) (bool, error) {
	raw, ok := values[name]
	if !ok && len(def) > 0 {
		return def[0], nil
	}

	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, conferr.Parse("%s must be boolean", name)
	}
	return value, nil
}

// GetInt reads a range-checked integer entry. bounds supplies an optional
// minimum and maximum, defaulting to [0, math.MaxInt32], both inclusive.
// An absent key returns def as-is: defaults are trusted and skip the
// range check.
func GetInt(values map[string]string, name string, def int, bounds ...int) (int, error) {
	minAllowed, maxAllowed := 0, math.MaxInt32
	if len(bounds) > 0 {
		minAllowed = bounds[0]
	}
	if len(bounds) > 1 {
		maxAllowed = bounds[1]
	}

	raw, ok := values[name]
	if !ok {
		return def, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, conferr.Invalid("%s must be a number", name)
	}

	if value < minAllowed || value > maxAllowed {
		return 0, conferr.Invalid("%s must be between %d and %d", name, minAllowed, maxAllowed)
	}

	return value, nil
}
