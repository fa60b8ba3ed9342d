package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ParseID parses a canonical entity identifier received at the boundary
func ParseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, NewValidationError("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError("invalid %s", field)
	}
	return id, nil
}

// ParseOptionalID parses an identifier that may be absent
func ParseOptionalID(field, raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := ParseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
