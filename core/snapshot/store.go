package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Load when no snapshot has been written yet.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCorrupt is returned by Load when the stored snapshot cannot be decoded.
	ErrCorrupt = errors.New("snapshot corrupt")
)

// Store loads and saves stock snapshots.
type Store interface {
	// Load returns the last saved mapping.
	Load(ctx context.Context) (map[int]int, error)
	// Save replaces the stored mapping with snap.
	Save(ctx context.Context, snap map[int]int) error
	// Location describes where snapshots are kept, for logging.
	Location() string
}

// Encode serializes a mapping into the snapshot wire format.
func Encode(snap map[int]int) ([]byte, error) {
	if snap == nil {
		snap = map[int]int{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses the snapshot wire format. Undecodable input yields ErrCorrupt.
func Decode(data []byte) (map[int]int, error) {
	var snap map[int]int
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if snap == nil {
		snap = map[int]int{}
	}
	return snap, nil
}
