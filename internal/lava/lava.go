// Package lava computes the exterior surface area of a droplet of lava made of unit cubes.
//
// Only faces reachable from the outside count: faces bordering air pockets fully enclosed by
// the droplet don't. The exterior is found with a flood fill started outside the droplet's
// bounding box, and each candidate face is then classified by looking at the cell on its
// open side.
//
// Cubes, faces and the flood filled cells are stored in sets.Set, with a backend chosen by
// the caller. The backend only changes performance, never the result.
package lava

import (
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/janpfeifer/lavaGo/internal/sets"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"slices"
)

var (
	// ErrNoCubes is returned when the surface area is requested for an empty droplet.
	ErrNoCubes = errors.New("no cubes")

	// ErrInvalidFace is returned for faces that are not on the lattice, or that don't touch any cube.
	ErrInvalidFace = geom.ErrInvalidFace

	// ErrOppositeNotFound is returned when none of the two cells around a face is a cube.
	ErrOppositeNotFound = errors.New("no cube found next to face")

	// ErrOutOfRange is returned for cubes with coordinates outside of geom.CoordinateRange.
	ErrOutOfRange = geom.ErrOutOfRange

	// ErrNotPackable is returned when the packed backend is requested for a droplet too
	// large for unique packed keys.
	ErrNotPackable = errors.New("droplet too large for the packed backend")
)

// Calculator holds the state of the surface area computation of one droplet.
//
// It is not safe for concurrent use.
type Calculator struct {
	cubes    sets.Set[geom.Cube]
	faces    sets.Set[geom.Face]
	exterior sets.Set[geom.Cube]

	box     geom.BoundingBox
	flooded bool
}

// NewCalculator creates a Calculator for the given cubes, using the backend described by
// config for all its sets. Repeated cubes are stored once.
//
// It returns ErrOutOfRange for cubes outside of geom.CoordinateRange, and ErrNotPackable if
// the packed backend can't hold the cells around the droplet.
func NewCalculator(config sets.Config, cubes []geom.Cube) (*Calculator, error) {
	for _, cube := range cubes {
		if err := cube.CheckRange(); err != nil {
			return nil, err
		}
	}
	if config.Kind == sets.Packed {
		box, ok := geom.BoundingBoxOf(slices.Values(cubes))
		if ok && !box.Expand(1).Packable() {
			return nil, errors.Wrapf(ErrNotPackable, "bounding box %s", box)
		}
	}
	c := &Calculator{
		cubes:    sets.New[geom.Cube](config),
		faces:    sets.New[geom.Face](config),
		exterior: sets.New[geom.Cube](config),
	}
	sets.Collect(c.cubes, slices.Values(cubes))
	return c, nil
}

// Cubes returns the set of cubes. It must not be modified.
func (c *Calculator) Cubes() sets.Set[geom.Cube] { return c.cubes }

// Faces returns the current set of faces: empty before GenerateFaces, all candidate faces
// after it, and only the exposed ones after FilterFaces.
func (c *Calculator) Faces() sets.Set[geom.Face] { return c.faces }

// Exterior returns the cells reached by the flood fill (empty before FloodExterior).
func (c *Calculator) Exterior() sets.Set[geom.Cube] { return c.exterior }

// BoundingBox of the cubes. It returns ErrNoCubes if there are no cubes.
func (c *Calculator) BoundingBox() (geom.BoundingBox, error) {
	box, ok := geom.BoundingBoxOf(c.cubes.All())
	if !ok {
		return box, ErrNoCubes
	}
	return box, nil
}

// GenerateFaces inserts the 6 faces of every cube in the set of faces.
// A face shared by two cubes is stored once.
func (c *Calculator) GenerateFaces() {
	for cube := range c.cubes.All() {
		for _, face := range cube.Faces() {
			c.faces.Insert(face)
		}
	}
	klog.V(2).Infof("%d candidate faces for %d cubes", c.faces.Len(), c.cubes.Len())
}

// SurfaceArea returns the number of faces of the droplet exposed to the outside.
//
// It generates the candidate faces, flood fills the exterior and filters the faces. Any
// error aborts the computation.
func (c *Calculator) SurfaceArea() (int, error) {
	if c.cubes.Len() == 0 {
		return 0, ErrNoCubes
	}
	c.GenerateFaces()
	if err := c.FloodExterior(); err != nil {
		return 0, err
	}
	if err := c.FilterFaces(); err != nil {
		return 0, err
	}
	return c.faces.Len(), nil
}

// TotalSurfaceArea counts every face of a cube not shared with another cube, including the
// ones facing enclosed air pockets.
func (c *Calculator) TotalSurfaceArea() int {
	area := 0
	for cube := range c.cubes.All() {
		for _, neighbor := range cube.Neighbors() {
			if !c.cubes.Has(neighbor) {
				area++
			}
		}
	}
	return area
}

// ExteriorSurfaceArea parses the cubes from r (see ParseCubes) and returns their exterior
// surface area, using the given sets backend.
func ExteriorSurfaceArea(r io.Reader, config sets.Config) (int, error) {
	cubes, err := ParseCubes(r)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to parse cubes")
	}
	calc, err := NewCalculator(config, cubes)
	if err != nil {
		return 0, err
	}
	return calc.SurfaceArea()
}
