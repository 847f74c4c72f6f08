package sets

import (
	"fmt"
	"github.com/janpfeifer/lavaGo/internal/generics"
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

// forEachBackend runs fn as a sub-test for every backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, config Config)) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			fn(t, DefaultConfig(kind))
		})
	}
}

func cubeRange(n int32) []geom.Cube {
	var cubes []geom.Cube
	for x := -n; x < n; x++ {
		for y := -n; y < n; y++ {
			for z := -n; z < n; z++ {
				cubes = append(cubes, geom.Cube{x, y, z})
			}
		}
	}
	return cubes
}

func TestBasicOperations(t *testing.T) {
	forEachBackend(t, func(t *testing.T, config Config) {
		s := New[geom.Cube](config)
		assert.Equal(t, 0, s.Len())
		assert.True(t, s.Insert(geom.Cube{1, 2, 3}))
		assert.True(t, s.Insert(geom.Cube{-1, 0, 0}))
		assert.False(t, s.Insert(geom.Cube{1, 2, 3}))
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Has(geom.Cube{1, 2, 3}))
		assert.False(t, s.Has(geom.Cube{3, 2, 1}))

		assert.False(t, s.Delete(geom.Cube{3, 2, 1}))
		assert.True(t, s.Delete(geom.Cube{1, 2, 3}))
		assert.False(t, s.Has(geom.Cube{1, 2, 3}))
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, []geom.Cube{{-1, 0, 0}}, slices.Collect(s.All()))
	})
}

func TestSameElements(t *testing.T) {
	cubes := cubeRange(4)
	want := generics.SetWith(cubes...)
	forEachBackend(t, func(t *testing.T, config Config) {
		s := New[geom.Cube](config)
		// Insert in reverse, and twice.
		for ii := len(cubes) - 1; ii >= 0; ii-- {
			s.Insert(cubes[ii])
		}
		Collect(s, slices.Values(cubes))
		assert.Equal(t, len(cubes), s.Len())
		got := generics.Collect(s.All())
		assert.True(t, want.Equal(got))
	})
}

func TestSortedBackendsIterateInOrder(t *testing.T) {
	cubes := cubeRange(3)
	want := slices.Clone(cubes)
	slices.SortFunc(want, geom.Cube.Compare)
	for _, kind := range []Kind{BTree, Sorted} {
		s := Collect(New[geom.Cube](DefaultConfig(kind)), slices.Values(cubes))
		assert.Equal(t, want, slices.Collect(s.All()), "backend %s", kind)
	}
}

func TestRetain(t *testing.T) {
	cubes := cubeRange(5)
	forEachBackend(t, func(t *testing.T, config Config) {
		s := Collect(New[geom.Cube](config), slices.Values(cubes))
		visited := generics.MakeSet[geom.Cube]()
		err := s.Retain(func(c geom.Cube) (bool, error) {
			require.False(t, visited.Has(c), "cube %s visited twice", c)
			visited.Insert(c)
			return (c.X()+c.Y()+c.Z())%2 == 0, nil
		})
		require.NoError(t, err)
		// Every element was visited exactly once, even with deletions during the iteration.
		assert.Len(t, visited, len(cubes))
		count := 0
		for _, c := range cubes {
			even := (c.X()+c.Y()+c.Z())%2 == 0
			assert.Equal(t, even, s.Has(c), "cube %s", c)
			if even {
				count++
			}
		}
		assert.Equal(t, count, s.Len())

		// Retaining again with the same predicate removes nothing.
		require.NoError(t, s.Retain(func(c geom.Cube) (bool, error) {
			return (c.X()+c.Y()+c.Z())%2 == 0, nil
		}))
		assert.Equal(t, count, s.Len())
	})
}

func TestRetainError(t *testing.T) {
	errStop := errors.New("stop")
	forEachBackend(t, func(t *testing.T, config Config) {
		s := Collect(New[geom.Cube](config), slices.Values(cubeRange(2)))
		calls := 0
		err := s.Retain(func(c geom.Cube) (bool, error) {
			calls++
			if calls == 10 {
				return false, errStop
			}
			return false, nil
		})
		assert.True(t, errors.Is(err, errStop))
		assert.Equal(t, 10, calls)
		// The element that failed is never removed.
		assert.LessOrEqual(t, s.Len(), 64)
		assert.GreaterOrEqual(t, s.Len(), 55)
	})
}

func TestFaces(t *testing.T) {
	forEachBackend(t, func(t *testing.T, config Config) {
		s := New[geom.Face](config)
		for _, f := range (geom.Cube{1, 1, 1}).Faces() {
			assert.True(t, s.Insert(f))
		}
		for _, f := range (geom.Cube{2, 1, 1}).Faces() {
			s.Insert(f)
		}
		// One face is shared.
		assert.Equal(t, 11, s.Len())
	})
}

func TestPackedCollision(t *testing.T) {
	s := New[geom.Cube](DefaultConfig(Packed))
	s.Insert(geom.Cube{0, 0, 0})
	outOfRange := geom.Cube{geom.PackRange * 2, 0, 0}
	require.Equal(t, (geom.Cube{0, 0, 0}).Pack(), outOfRange.Pack())
	assert.Panics(t, func() { s.Has(outOfRange) })
}

func TestParseConfig(t *testing.T) {
	for _, tc := range []struct {
		config string
		want   Config
		str    string
	}{
		{"", Config{Kind: Hash, Degree: DefaultDegree}, "hash"},
		{"hash", Config{Kind: Hash, Degree: DefaultDegree}, "hash"},
		{"hash:capacity=4096", Config{Kind: Hash, Capacity: 4096, Degree: DefaultDegree}, "hash:capacity=4096"},
		{"packed", Config{Kind: Packed, Degree: DefaultDegree}, "packed"},
		{" btree:degree=8 ", Config{Kind: BTree, Degree: 8}, "btree:degree=8"},
		{"btree", Config{Kind: BTree, Degree: DefaultDegree}, "btree"},
		{"sorted:capacity=10", Config{Kind: Sorted, Capacity: 10, Degree: DefaultDegree}, "sorted:capacity=10"},
	} {
		t.Run(fmt.Sprintf("%q", tc.config), func(t *testing.T) {
			got, err := ParseConfig(tc.config)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.str, got.String())
			roundTrip, err := ParseConfig(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, roundTrip)
		})
	}

	for _, config := range []string{
		"rbtree", "hash:capacity=x", "hash:capacity=-1", "btree:degree=1", "btree:capacity=10", "sorted:foo",
	} {
		_, err := ParseConfig(config)
		assert.Errorf(t, err, "config %q should fail", config)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "btree", BTree.String())
	assert.Equal(t, "Kind(17)", Kind(17).String())
	assert.Len(t, Kinds(), 4)
	assert.Panics(t, func() { New[geom.Cube](Config{Kind: Kind(17)}) })
}
