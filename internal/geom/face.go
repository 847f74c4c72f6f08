package geom

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
)

// Face is the center of a face between two adjacent cells, stored with doubled coordinates.
//
// The face shared by cell c and the cell c+1 along some axis is 2*c+1 on that axis and 2*c on the
// other two. So a valid Face has exactly one odd component: the axis the face is perpendicular to.
// Keeping everything integer avoids comparing half-integer floats for equality.
type Face [NumAxes]int32

// ErrInvalidFace is returned when a Face doesn't have exactly one odd component, or when it doesn't
// touch any cube.
var ErrInvalidFace = errors.New("invalid face")

// Compare orders faces lexicographically on their (doubled) x, y and z.
func (f Face) Compare(f2 Face) int {
	return compare3(f, f2)
}

// Pack returns a unique key for the face, see PackRange.
func (f Face) Pack() uint64 { return pack3(f) }

// String returns the face center in cube units, e.g. "1.5,2,2".
func (f Face) String() string {
	return fmt.Sprintf("%s,%s,%s", halfString(f[0]), halfString(f[1]), halfString(f[2]))
}

func halfString(v int32) string {
	return strconv.FormatFloat(float64(v)/2, 'f', -1, 64)
}

// Axis returns the axis the face is perpendicular to, that is, its only odd component.
func (f Face) Axis() (int, error) {
	axis := -1
	for ii, v := range f {
		if v&1 == 0 {
			continue
		}
		if axis != -1 {
			return -1, errors.Wrapf(ErrInvalidFace, "face %s is off-lattice on axes %d and %d", f, axis, ii)
		}
		axis = ii
	}
	if axis == -1 {
		return -1, errors.Wrapf(ErrInvalidFace, "face %s is at a cell center", f)
	}
	return axis, nil
}

// Cells returns the two cells sharing the face: a is the one with the lower coordinate along
// the face's axis, and b = a + 1 along that axis.
func (f Face) Cells() (a, b Cube, err error) {
	var axis int
	axis, err = f.Axis()
	if err != nil {
		return
	}
	// Arithmetic shift floors, also for negative coordinates.
	a = Cube{f[0] >> 1, f[1] >> 1, f[2] >> 1}
	b = a
	b[axis]++
	return
}
