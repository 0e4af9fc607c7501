package base

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseUUIDs parses every argument as a resource ID.
func ParseUUIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid ID %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseUUID parses a single resource ID.
func ParseUUID(arg string) (uuid.UUID, error) {
	ids, err := ParseUUIDs([]string{arg})
	if err != nil {
		return uuid.Nil, err
	}
	return ids[0], nil
}
