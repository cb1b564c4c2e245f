package summing

import (
	apperrors "github.com/AniDashyan/parallel-summation/internal/errors"
)

// Factory keys accepted by the --strategy flag.
const (
	KeySingle = "single"
	KeyLock   = "lock"
	KeyAtomic = "atomic"
	KeyReduce = "reduce"
)

// runOrder is the canonical execution and report order. It is fixed rather
// than alphabetical because the report table's row order is part of the
// external interface: baseline first, then the three parallel strategies.
var runOrder = []string{KeySingle, KeyLock, KeyAtomic, KeyReduce}

// SummerFactory creates and enumerates the registered summation strategies.
// It decouples strategy selection (configuration) from strategy construction,
// and lets tests substitute fakes for the real implementations.
type SummerFactory interface {
	// Get returns the strategy registered under the given key.
	Get(key string) (Summer, error)
	// List returns all registered keys in canonical run order.
	List() []string
	// GetAll returns all registered strategies in canonical run order.
	GetAll() []Summer
}

// defaultFactory is the production SummerFactory backed by a fixed registry.
type defaultFactory struct {
	registry map[string]Summer
}

// NewDefaultFactory creates the factory holding the four built-in strategies.
func NewDefaultFactory() SummerFactory {
	return &defaultFactory{
		registry: map[string]Summer{
			KeySingle: SequentialSummer{},
			KeyLock:   LockSummer{},
			KeyAtomic: AtomicSummer{},
			KeyReduce: ReduceSummer{},
		},
	}
}

// Get returns the strategy registered under the given key.
func (f *defaultFactory) Get(key string) (Summer, error) {
	s, ok := f.registry[key]
	if !ok {
		return nil, apperrors.NewConfigError("unknown strategy %q (valid: single, lock, atomic, reduce)", key)
	}
	return s, nil
}

// List returns all registered keys in canonical run order.
func (f *defaultFactory) List() []string {
	keys := make([]string, len(runOrder))
	copy(keys, runOrder)
	return keys
}

// GetAll returns all registered strategies in canonical run order.
func (f *defaultFactory) GetAll() []Summer {
	summers := make([]Summer, 0, len(runOrder))
	for _, key := range runOrder {
		summers = append(summers, f.registry[key])
	}
	return summers
}
