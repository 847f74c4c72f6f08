// Package geom defines the lattice values used to describe a solid made of unit cubes:
// the Cube (a lattice cell) and the Face (the center of a face between two cells).
package geom

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

const (
	// NumAxes of the lattice.
	NumAxes = 3

	// NumNeighbors of each cell: one per direction along each axis.
	NumNeighbors = 2 * NumAxes

	// CoordinateRange bounds the coordinates of a Cube: they must be strictly between
	// -CoordinateRange and CoordinateRange, so the doubled coordinates of its faces and of the
	// cells around its bounding box fit in an int32.
	CoordinateRange = 1 << 29
)

// ErrOutOfRange is returned for cubes with coordinates outside of CoordinateRange.
var ErrOutOfRange = errors.New("coordinate out of range")

// Cube is the position of a unit cube (a lattice cell).
type Cube [NumAxes]int32

// X coordinate of the cube.
func (c Cube) X() int32 { return c[0] }

// Y coordinate of the cube.
func (c Cube) Y() int32 { return c[1] }

// Z coordinate of the cube.
func (c Cube) Z() int32 { return c[2] }

// Add returns the component-wise sum c + c2.
func (c Cube) Add(c2 Cube) Cube {
	return Cube{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Sub returns the component-wise difference c - c2.
func (c Cube) Sub(c2 Cube) Cube {
	return Cube{c[0] - c2[0], c[1] - c2[1], c[2] - c2[2]}
}

// Compare orders cubes lexicographically on x, y and z.
// It returns -1, 0 or 1.
func (c Cube) Compare(c2 Cube) int {
	return compare3(c, c2)
}

// Pack returns a unique key for the cube, see PackRange.
func (c Cube) Pack() uint64 { return pack3(c) }

// String returns the cube as "x,y,z", the same format it is parsed from.
func (c Cube) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X(), c.Y(), c.Z())
}

// CheckRange returns ErrOutOfRange if any coordinate of c is outside of CoordinateRange.
func (c Cube) CheckRange() error {
	for _, v := range c {
		if v <= -CoordinateRange || v >= CoordinateRange {
			return errors.Wrapf(ErrOutOfRange, "cube %s, coordinates must be in (%d, %d)",
				c, -CoordinateRange, CoordinateRange)
		}
	}
	return nil
}

// neighborDeltas enumerates the unit steps along each axis, -x, +x, -y, +y, -z, +z.
var neighborDeltas = [NumNeighbors]Cube{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Neighbors returns the 6 cells sharing a face with c, in the order -x, +x, -y, +y, -z, +z.
func (c Cube) Neighbors() (neighbors [NumNeighbors]Cube) {
	for ii, delta := range neighborDeltas {
		neighbors[ii] = c.Add(delta)
	}
	return
}

// Faces returns the 6 faces of the cube, in the same order as Neighbors: the face at index ii
// is the one shared with Neighbors()[ii].
func (c Cube) Faces() (faces [NumNeighbors]Face) {
	doubled := Face{2 * c[0], 2 * c[1], 2 * c[2]}
	for ii, delta := range neighborDeltas {
		faces[ii] = Face{doubled[0] + delta[0], doubled[1] + delta[1], doubled[2] + delta[2]}
	}
	return
}

// ParseCube parses a line formatted as "x,y,z". Spaces around the numbers are ignored.
func ParseCube(line string) (c Cube, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != NumAxes {
		return c, errors.Errorf("expected %d comma-separated integers, got %q", NumAxes, line)
	}
	for axis, part := range parts {
		var v int64
		v, err = strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return c, errors.Wrapf(err, "failed to parse coordinate #%d of %q", axis, line)
		}
		c[axis] = int32(v)
	}
	return c, nil
}

func compare3(a, b [NumAxes]int32) int {
	for axis := range NumAxes {
		if a[axis] != b[axis] {
			if a[axis] < b[axis] {
				return -1
			}
			return 1
		}
	}
	return 0
}
