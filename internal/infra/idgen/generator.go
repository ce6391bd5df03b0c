// Package idgen issues prefixed sequence identifiers like "U007", backed by
// a JSON object file mapping each prefix to the last issued identifier.
package idgen

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"clinic/internal/domain/service"
	"clinic/internal/infra/jsonstore"

	"github.com/pkg/errors"
)

// generator implements service.IDGenerator on top of a jsonstore singleton.
// The whole read-increment-write sequence runs under one mutex, so callers
// within the process never observe or issue the same identifier twice.
// There is no cross-process lock.
type generator struct {
	state  *jsonstore.Singleton[map[string]string]
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates an identifier generator persisting its counters at statePath.
func New(statePath string, logger *slog.Logger) service.IDGenerator {
	return &generator{
		state:  jsonstore.NewSingleton[map[string]string](statePath),
		logger: logger,
	}
}

// NextID returns the next identifier for the prefix, zero-padded to three
// digits. Counters above 999 widen naturally ("U1000"); that is allowed.
func (g *generator) NextID(prefix string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.nextLocked(prefix)
}

// NextIDExcluding keeps generating until the candidate is absent from the
// existing set. Discarded candidates still advance the persisted counter;
// the waste is accepted to keep the counter strictly monotonic.
func (g *generator) NextIDExcluding(prefix string, existing []string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		id, err := g.nextLocked(prefix)
		if err != nil {
			return "", err
		}
		if !slices.Contains(existing, id) {
			return id, nil
		}
	}
}

func (g *generator) nextLocked(prefix string) (string, error) {
	lastIDs, err := g.state.Read()
	if err != nil {
		// A damaged counter file must not stop identifier generation.
		// Restart from an empty map; collision avoidance against live data
		// is the caller's responsibility through NextIDExcluding.
		g.logger.Error("failed to read id counter state, starting from empty map",
			slog.String("path", g.state.Path()), slog.Any("error", err))
		lastIDs = nil
	}
	if lastIDs == nil {
		lastIDs = make(map[string]string)
	}

	lastID, ok := lastIDs[prefix]
	if !ok {
		lastID = prefix + "000"
	}

	next := extractNumber(lastID) + 1
	id := fmt.Sprintf("%s%03d", prefix, next)

	lastIDs[prefix] = id
	if err := g.state.Write(lastIDs); err != nil {
		return "", errors.Wrap(err, "failed to persist id counter state")
	}

	return id, nil
}

// extractNumber returns the number formed by the digit characters of id.
// An id with no digits parses as 0.
func extractNumber(id string) int {
	digits := make([]rune, 0, len(id))
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0
	}

	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}

	return n
}
