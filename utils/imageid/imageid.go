// Package imageid issues the img_* identifiers attached to generation
// records. IDs are lowercase ULIDs, so lexical order is creation order.
package imageid

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const prefix = "img_"

type generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var gen = &generator{
	entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
}

// Records can be written concurrently; the monotonic entropy source is
// not safe for that on its own.
func (g *generator) next() ulid.ULID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// New returns a fresh img_* identifier.
func New() string {
	return prefix + strings.ToLower(gen.next().String())
}

// IsValid reports whether value is a well-formed img_* identifier.
func IsValid(value string) bool {
	if !strings.HasPrefix(value, prefix) {
		return false
	}
	_, err := Parse(value)
	return err == nil
}

// Parse strips the prefix and returns the underlying ULID.
func Parse(value string) (ulid.ULID, error) {
	return ulid.Parse(strings.TrimPrefix(strings.TrimSpace(value), prefix))
}

// Time extracts the creation timestamp embedded in an identifier.
func Time(value string) (time.Time, error) {
	id, err := Parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(id.Time()), nil
}
