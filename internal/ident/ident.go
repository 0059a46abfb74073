package ident

import (
	"strings"

	"github.com/google/uuid"
)

// IsUUID reports whether s is a canonical 8-4-4-4-12 hex identifier.
// Any version/variant is accepted: rows created by the store and rows
// created client-side use different generators.
func IsUUID(s string) bool {
	if s == "" {
		return false
	}
	if len(s) != 36 || strings.Count(s, "-") != 4 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsStoreUUID is the strict variant: version nibble must be 4 and the
// variant nibble one of 8/9/a/b, i.e. the shape the store itself assigns.
func IsStoreUUID(s string) bool {
	if !IsUUID(s) {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

// OrNil returns a pointer to s when it is a well-formed identifier and nil
// otherwise. Placeholder ids (timestamp-derived temp ids, product codes)
// come out as nil so a save silently drops the stale reference instead of
// failing the whole write.
func OrNil(s string) *string {
	s = strings.TrimSpace(s)
	if !IsUUID(s) {
		return nil
	}
	return &s
}

// Referencer is anything that can be unwrapped to its row id, typically an
// object-shaped foreign key coming from the UI.
type Referencer interface {
	RefID() string
}

// RefOrNil unwraps an object-shaped reference and validates its id.
// A nil reference yields nil, never an error.
func RefOrNil(r Referencer) *string {
	if r == nil {
		return nil
	}
	return OrNil(r.RefID())
}

// First returns the first candidate that validates, or nil.
func First(candidates ...string) *string {
	for _, c := range candidates {
		if p := OrNil(c); p != nil {
			return p
		}
	}
	return nil
}

// NewID generates a fresh client-side identifier.
func NewID() string {
	return uuid.NewString()
}
