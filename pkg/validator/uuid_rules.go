package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// asUUID accepts uuid.UUID values and canonical UUID strings.
func asUUID(value any) (uuid.UUID, bool) {
	if id, ok := value.(uuid.UUID); ok {
		return id, true
	}
	s, ok := toString(value)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, false
	}

	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// UUID validates standard UUID format.
func UUID() Rule {
	return Rule{
		Name: "uuid",
		Check: func(value any) bool {
			_, ok := asUUID(value)
			return ok
		},
		Message: "must be a valid UUID",
	}
}

func NonNilUUID() Rule {
	return Rule{
		Name: "non_nil_uuid",
		Check: func(value any) bool {
			id, ok := asUUID(value)
			return ok && id != uuid.Nil
		},
		Message: "UUID cannot be nil",
	}
}

// UUIDVersion validates the version nibble of a UUID.
func UUIDVersion(version int) Rule {
	return Rule{
		Name: "uuid_version",
		Check: func(value any) bool {
			id, ok := asUUID(value)
			return ok && id.Version() == uuid.Version(version)
		},
		Message: fmt.Sprintf("must be a UUID version %d", version),
		Params:  map[string]any{"version": version},
	}
}
