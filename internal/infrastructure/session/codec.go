// Package session persists the console session under a single named
// storage entry, either as a file or (see db/redis) as a Redis key.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/bakery-saas/superadmin-console/internal/core/domain"
)

// EntryName names the one storage entry that holds the session.
const EntryName = "auth-storage"

const formatVersion = 1

// envelope is the stored form: the session state plus a format version.
type envelope struct {
	State   domain.Session `json:"state"`
	Version int            `json:"version"`
}

// Encode renders s in the stored form.
func Encode(s domain.Session) ([]byte, error) {
	data, err := json.Marshal(envelope{State: s, Version: formatVersion})
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// Decode parses a stored entry. An entry without a token decodes to nil.
func Decode(data []byte) (*domain.Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if env.Version > formatVersion {
		return nil, fmt.Errorf("decode session: unsupported format version %d", env.Version)
	}
	if env.State.Token == "" {
		return nil, nil
	}
	return &env.State, nil
}
