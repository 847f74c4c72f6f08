package lava

import (
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// This file holds the flood fill of the exterior and the classification of faces
// against it.

// FloodExterior fills the set of exterior cells: every cell that is not a cube and can be
// reached from outside the bounding box with axis-aligned unit steps.
//
// The fill starts at the corner below the bounding box and is limited to the bounding box
// expanded by one cell: that margin is enough to wrap around the whole droplet. It is an
// iterative depth-first traversal, each cell is visited at most once.
//
// It is a no-op if it was already run.
func (c *Calculator) FloodExterior() error {
	if c.flooded {
		return nil
	}
	box, err := c.BoundingBox()
	if err != nil {
		return err
	}
	c.box = box
	limits := box.Expand(1)

	stack := []geom.Cube{limits.Min}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !limits.Contains(cell) {
			// Off limits.
			continue
		}
		if c.cubes.Has(cell) {
			// Can't be both a cube and exterior.
			continue
		}
		if !c.exterior.Insert(cell) {
			// Already visited.
			continue
		}
		for _, neighbor := range cell.Neighbors() {
			stack = append(stack, neighbor)
		}
	}
	c.flooded = true
	klog.V(1).Infof("flood fill of %s: %d exterior cells out of %d", limits, c.exterior.Len(), limits.Volume())
	return nil
}

// OppositeCell returns the cell on the open side of the face, that is, the one of the two
// cells around the face that is not a cube.
//
// It returns ErrOppositeNotFound if neither of them is a cube.
func (c *Calculator) OppositeCell(face geom.Face) (geom.Cube, error) {
	a, b, err := face.Cells()
	if err != nil {
		return geom.Cube{}, err
	}
	sides := [2]geom.Cube{a, b}
	for ii, side := range sides {
		if c.cubes.Has(side) {
			return sides[1-ii], nil
		}
	}
	return geom.Cube{}, errors.Wrapf(ErrOppositeNotFound, "face %s", face)
}

// Classify reports whether the face is exposed to the exterior.
//
// Faces between two cubes are not exposed. Faces between a cube and an empty cell are exposed
// if the empty cell was reached by FloodExterior, which must be run first. Faces not touching
// any cube are invalid.
func (c *Calculator) Classify(face geom.Face) (exposed bool, err error) {
	a, b, err := face.Cells()
	if err != nil {
		return false, err
	}
	hasA, hasB := c.cubes.Has(a), c.cubes.Has(b)
	if !hasA && !hasB {
		return false, errors.Wrapf(ErrInvalidFace, "face %s doesn't touch any cube", face)
	}
	if hasA && hasB {
		// Internal face.
		return false, nil
	}
	opposite, err := c.OppositeCell(face)
	if err != nil {
		return false, err
	}
	return c.exterior.Has(opposite), nil
}

// FilterFaces removes from the set of faces the ones not exposed to the exterior.
// It runs FloodExterior if needed. Filtering an already filtered set changes nothing.
func (c *Calculator) FilterFaces() error {
	if err := c.FloodExterior(); err != nil {
		return err
	}
	before := c.faces.Len()
	err := c.faces.Retain(c.Classify)
	if err != nil {
		return errors.WithMessage(err, "failed to filter faces")
	}
	klog.V(1).Infof("%d faces exposed to the exterior out of %d", c.faces.Len(), before)
	return nil
}

// TrappedCells counts the empty cells inside the bounding box that the flood fill could not
// reach: the volume of the enclosed air pockets. It runs FloodExterior if needed.
func (c *Calculator) TrappedCells() (int, error) {
	if err := c.FloodExterior(); err != nil {
		return 0, err
	}
	count := 0
	for cell := range c.box.Cells() {
		if !c.cubes.Has(cell) && !c.exterior.Has(cell) {
			count++
		}
	}
	return count, nil
}
