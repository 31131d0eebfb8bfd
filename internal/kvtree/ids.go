package kvtree

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDProvider issues node ids. Ids only need to be unique within one tree
// lifetime; callers must not persist or compare them across rebuilds.
type IDProvider interface {
	NewID() string
}

// IDFunc adapts a plain function to IDProvider.
type IDFunc func() string

// NewID calls f.
func (f IDFunc) NewID() string {
	return f()
}

// UUIDs returns a provider of random UUIDs. If the secure random source
// fails, it falls back to FallbackID.
func UUIDs() IDProvider {
	return IDFunc(func() string {
		id, err := uuid.NewRandom()
		if err != nil {
			return FallbackID()
		}
		return id.String()
	})
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// FallbackID builds an id from the current time in base 36 followed by nine
// random base-36 characters.
func FallbackID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + string(suffix)
}

// Fallback returns a provider backed by FallbackID.
func Fallback() IDProvider {
	return IDFunc(FallbackID)
}

// Sequence returns a deterministic provider yielding prefix-1, prefix-2, and
// so on. It is meant for tests and stable listings.
func Sequence(prefix string) IDProvider {
	n := 0
	return IDFunc(func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	})
}

// ProviderByName maps a configured generator name to a provider. Unknown
// names select UUIDs.
func ProviderByName(name string) IDProvider {
	switch name {
	case "fallback":
		return Fallback()
	case "sequence":
		return Sequence("n")
	default:
		return UUIDs()
	}
}
