// Package stats caches calculated character statistics
package stats

//go:generate mockgen -destination=mock/mock_repository.go -package=statsmock github.com/KirkDiggler/rpg-sheet/internal/repositories/stats Repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository stores calculated stats keyed by character and snapshot fingerprint
type Repository interface {
	// Get returns cached stats for the character
	// Returns errors.NotFound when nothing is cached or the fingerprint differs
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put caches stats for the given fingerprint, replacing any previous entry
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete drops the cached entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for reading cached stats
type GetInput struct {
	CharacterID string
	Fingerprint string
}

// GetOutput defines the output for reading cached stats
type GetOutput struct {
	Stats     *dnd5e.CalculatedStats
	Defaulted []string
	Warnings  []Warning
	CachedAt  time.Time
}

// PutInput defines the input for caching stats
type PutInput struct {
	CharacterID string
	Fingerprint string
	Stats       *dnd5e.CalculatedStats
	Defaulted   []string
	Warnings    []Warning
	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// PutOutput defines the output for caching stats
type PutOutput struct {
	ExpiresAt time.Time
}

// Warning is a calculation warning stored alongside the stats
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DeleteInput defines the input for dropping cached stats
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for dropping cached stats
type DeleteOutput struct{}

// Fingerprint hashes the parts of a snapshot that feed the calculation.
// Timestamps are excluded. salt distinguishes engine configurations that
// would produce different stats for the same snapshot.
func Fingerprint(char *dnd5e.Character, salt string) (string, error) {
	if char == nil {
		return "", nil
	}
	snapshot := *char
	snapshot.CreatedAt = 0
	snapshot.UpdatedAt = 0

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return "", err
	}

	h := xxhash.New()
	_, _ = h.WriteString(salt)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(data)
	return strconv.FormatUint(h.Sum64(), 16), nil
}
