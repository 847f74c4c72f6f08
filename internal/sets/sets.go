// Package sets defines the Set interface used to store cubes and faces, and the
// interchangeable backends implementing it.
//
// Backends are selected with a configuration string, see ParseConfig. They differ only in
// performance: for the same operations every backend holds the same elements.
package sets

import (
	"iter"
)

// Key is what can be stored in a Set: it must be comparable, totally ordered (for the sorted
// backends) and have a packed uint64 representation (for the packed backend).
type Key[T any] interface {
	comparable

	// Compare returns -1, 0 or 1 if the key is smaller, equal or larger than other.
	Compare(other T) int

	// Pack returns a unique uint64 representation of the key.
	Pack() uint64
}

// Set of keys of type T.
type Set[T any] interface {
	// Insert key in the set. It returns true if the key was not there before.
	Insert(key T) bool

	// Has returns whether the key is in the set.
	Has(key T) bool

	// Delete key from the set. It returns true if the key was there.
	Delete(key T) bool

	// Len returns the number of keys in the set.
	Len() int

	// All iterates over the keys of the set. The order depends on the backend.
	// The set must not be modified during the iteration, see Retain.
	All() iter.Seq[T]

	// Retain removes every key for which keep returns false.
	//
	// It stops at the first error returned by keep, and returns it. In that case which keys
	// were already removed is undefined.
	Retain(keep func(key T) (bool, error)) error
}

// New creates an empty Set with the backend given by config.
func New[T Key[T]](config Config) Set[T] {
	switch config.Kind {
	case Hash:
		return newHashSet[T](config.Capacity)
	case Packed:
		return newPackedSet[T](config.Capacity)
	case BTree:
		return newBTreeSet[T](config.Degree)
	case Sorted:
		return newSortedSet[T](config.Capacity)
	}
	panicUnknownKind(config.Kind)
	return nil
}

// Collect inserts all values of seq into s and returns s.
func Collect[T any](s Set[T], seq iter.Seq[T]) Set[T] {
	for key := range seq {
		s.Insert(key)
	}
	return s
}
