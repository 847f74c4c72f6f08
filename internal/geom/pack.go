package geom

// PackBits is the number of bits per axis used by Cube.Pack and Face.Pack.
//
// Keys are unique for coordinates in [-PackRange, PackRange). Outside that range
// different values may share a key.
const PackBits = 21

// PackRange is the half-width of the range of coordinates with unique packed keys.
const PackRange = 1 << (PackBits - 1)

const packMask = 1<<PackBits - 1

// InPackRange reports whether every component of v has a unique packed representation.
func InPackRange(v [NumAxes]int32) bool {
	for _, x := range v {
		if x < -PackRange || x >= PackRange {
			return false
		}
	}
	return true
}

// pack3 interleaves the bits of the 3 coordinates (Morton order), after shifting them to be
// non-negative. Nearby cells get nearby keys.
func pack3(v [NumAxes]int32) uint64 {
	return spread(v[0]) | spread(v[1])<<1 | spread(v[2])<<2
}

// spread the lower PackBits bits of x so there are two zero bits between each of them.
func spread(x int32) uint64 {
	v := uint64(int64(x)+PackRange) & packMask
	v = (v | v<<32) & 0x1f00000000ffff
	v = (v | v<<16) & 0x1f0000ff0000ff
	v = (v | v<<8) & 0x100f00f00f00f00f
	v = (v | v<<4) & 0x10c30c30c30c30c3
	v = (v | v<<2) & 0x1249249249249249
	return v
}
