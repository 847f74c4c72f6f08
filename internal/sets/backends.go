package sets

import (
	"github.com/gomlx/exceptions"
	"github.com/google/btree"
	"github.com/janpfeifer/lavaGo/internal/generics"
	"iter"
	"maps"
	"slices"
)

// hashSet is a thin wrapper over generics.Set. Deleting from a Go map while ranging over it
// is safe, so Retain deletes in place.
type hashSet[T Key[T]] struct {
	set generics.Set[T]
}

func newHashSet[T Key[T]](capacity int) *hashSet[T] {
	return &hashSet[T]{set: generics.MakeSet[T](capacity)}
}

func (s *hashSet[T]) Insert(key T) bool { return s.set.InsertNew(key) }
func (s *hashSet[T]) Has(key T) bool    { return s.set.Has(key) }
func (s *hashSet[T]) Len() int          { return len(s.set) }
func (s *hashSet[T]) All() iter.Seq[T]  { return maps.Keys(s.set) }

func (s *hashSet[T]) Delete(key T) bool {
	if !s.set.Has(key) {
		return false
	}
	delete(s.set, key)
	return true
}

func (s *hashSet[T]) Retain(keep func(key T) (bool, error)) error {
	for key := range s.set {
		ok, err := keep(key)
		if err != nil {
			return err
		}
		if !ok {
			delete(s.set, key)
		}
	}
	return nil
}

// packedSet maps the packed representation of the keys to the keys themselves.
// Keys must be within geom.PackRange, otherwise it panics.
type packedSet[T Key[T]] struct {
	set map[uint64]T
}

func newPackedSet[T Key[T]](capacity int) *packedSet[T] {
	return &packedSet[T]{set: make(map[uint64]T, capacity)}
}

// pack returns the key of v, and checks it is not already used by a different value.
func (s *packedSet[T]) pack(v T) uint64 {
	key := v.Pack()
	if stored, found := s.set[key]; found && stored != v {
		exceptions.Panicf("sets: packed key collision between %v and %v, coordinates out of range", stored, v)
	}
	return key
}

func (s *packedSet[T]) Has(v T) bool {
	_, found := s.set[s.pack(v)]
	return found
}

func (s *packedSet[T]) Insert(v T) bool {
	key := s.pack(v)
	if _, found := s.set[key]; found {
		return false
	}
	s.set[key] = v
	return true
}

func (s *packedSet[T]) Delete(v T) bool {
	key := s.pack(v)
	if _, found := s.set[key]; !found {
		return false
	}
	delete(s.set, key)
	return true
}

func (s *packedSet[T]) Len() int         { return len(s.set) }
func (s *packedSet[T]) All() iter.Seq[T] { return maps.Values(s.set) }

func (s *packedSet[T]) Retain(keep func(v T) (bool, error)) error {
	for key, v := range s.set {
		ok, err := keep(v)
		if err != nil {
			return err
		}
		if !ok {
			delete(s.set, key)
		}
	}
	return nil
}

// bTreeSet uses github.com/google/btree. A B-tree can't be modified while being iterated,
// so Retain collects the keys to remove first.
type bTreeSet[T Key[T]] struct {
	tree *btree.BTreeG[T]
}

func newBTreeSet[T Key[T]](degree int) *bTreeSet[T] {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &bTreeSet[T]{tree: btree.NewG(degree, func(a, b T) bool { return a.Compare(b) < 0 })}
}

func (s *bTreeSet[T]) Insert(key T) bool {
	_, replaced := s.tree.ReplaceOrInsert(key)
	return !replaced
}

func (s *bTreeSet[T]) Has(key T) bool { return s.tree.Has(key) }
func (s *bTreeSet[T]) Len() int       { return s.tree.Len() }

func (s *bTreeSet[T]) Delete(key T) bool {
	_, found := s.tree.Delete(key)
	return found
}

func (s *bTreeSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(key T) bool { return yield(key) })
	}
}

func (s *bTreeSet[T]) Retain(keep func(key T) (bool, error)) error {
	var toDelete []T
	var err error
	s.tree.Ascend(func(key T) bool {
		var ok bool
		ok, err = keep(key)
		if err != nil {
			return false
		}
		if !ok {
			toDelete = append(toDelete, key)
		}
		return true
	})
	if err != nil {
		return err
	}
	for _, key := range toDelete {
		s.tree.Delete(key)
	}
	return nil
}

// sortedSet keeps the keys in a sorted slice.
type sortedSet[T Key[T]] struct {
	keys []T
}

func newSortedSet[T Key[T]](capacity int) *sortedSet[T] {
	return &sortedSet[T]{keys: make([]T, 0, capacity)}
}

func (s *sortedSet[T]) find(key T) (int, bool) {
	return slices.BinarySearchFunc(s.keys, key, func(a, b T) int { return a.Compare(b) })
}

func (s *sortedSet[T]) Insert(key T) bool {
	idx, found := s.find(key)
	if found {
		return false
	}
	s.keys = slices.Insert(s.keys, idx, key)
	return true
}

func (s *sortedSet[T]) Has(key T) bool {
	_, found := s.find(key)
	return found
}

func (s *sortedSet[T]) Delete(key T) bool {
	idx, found := s.find(key)
	if !found {
		return false
	}
	s.keys = slices.Delete(s.keys, idx, idx+1)
	return true
}

func (s *sortedSet[T]) Len() int         { return len(s.keys) }
func (s *sortedSet[T]) All() iter.Seq[T] { return slices.Values(s.keys) }

// Retain compacts the slice in place: kept keys are moved down behind the read position, so
// the read position never skips or revisits a key.
func (s *sortedSet[T]) Retain(keep func(key T) (bool, error)) error {
	write := 0
	for read, key := range s.keys {
		ok, err := keep(key)
		if err != nil {
			// Leave the set consistent: keep everything not yet visited.
			write += copy(s.keys[write:], s.keys[read:])
			clear(s.keys[write:])
			s.keys = s.keys[:write]
			return err
		}
		if ok {
			s.keys[write] = key
			write++
		}
	}
	clear(s.keys[write:])
	s.keys = s.keys[:write]
	return nil
}
