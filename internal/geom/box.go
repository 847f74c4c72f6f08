package geom

import (
	"fmt"
	"iter"
)

// BoundingBox is an axis-aligned box of cells, with both Min and Max included.
type BoundingBox struct {
	Min, Max Cube
}

// BoundingBoxOf returns the smallest box holding all cubes in seq.
// It returns false if seq is empty.
func BoundingBoxOf(seq iter.Seq[Cube]) (box BoundingBox, ok bool) {
	for c := range seq {
		if !ok {
			box = BoundingBox{Min: c, Max: c}
			ok = true
			continue
		}
		for axis := range NumAxes {
			box.Min[axis] = min(box.Min[axis], c[axis])
			box.Max[axis] = max(box.Max[axis], c[axis])
		}
	}
	return
}

// Expand returns the box grown by margin cells on every side.
func (b BoundingBox) Expand(margin int32) BoundingBox {
	delta := Cube{margin, margin, margin}
	return BoundingBox{Min: b.Min.Sub(delta), Max: b.Max.Add(delta)}
}

// Contains reports whether c is inside the box.
func (b BoundingBox) Contains(c Cube) bool {
	for axis := range NumAxes {
		if c[axis] < b.Min[axis] || c[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Volume is the number of cells in the box.
func (b BoundingBox) Volume() int64 {
	volume := int64(1)
	for axis := range NumAxes {
		volume *= int64(b.Max[axis]) - int64(b.Min[axis]) + 1
	}
	return volume
}

// Packable reports whether every cell of the box, and every face of those cells, has a unique
// packed key (see PackRange). The box must be within CoordinateRange.
func (b BoundingBox) Packable() bool {
	var low, high [NumAxes]int32
	for axis := range NumAxes {
		low[axis] = 2*b.Min[axis] - 1
		high[axis] = 2*b.Max[axis] + 1
	}
	return InPackRange(low) && InPackRange(high)
}

// Cells iterates over every cell of the box, in lexicographic order.
func (b BoundingBox) Cells() iter.Seq[Cube] {
	return func(yield func(Cube) bool) {
		for x := b.Min[0]; x <= b.Max[0]; x++ {
			for y := b.Min[1]; y <= b.Max[1]; y++ {
				for z := b.Min[2]; z <= b.Max[2]; z++ {
					if !yield(Cube{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]x[%d..%d]",
		b.Min[0], b.Max[0], b.Min[1], b.Max[1], b.Min[2], b.Max[2])
}
