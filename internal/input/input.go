// Package input opens the text holding the cube coordinates, one "x,y,z" per line.
//
// The source can be a file (decompressed on the fly if it ends with ".zst"), the
// standard input, or the built-in Example.
package input

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects the standard input.
const Stdin = "-"

// ZstdSuffix marks files compressed with zstd.
const ZstdSuffix = ".zst"

// Example is a small droplet of 13 cubes with one enclosed air cell.
// Its exterior surface area is ExampleArea.
const Example = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

// ExampleArea is the exterior surface area of Example.
const ExampleArea = 58

// Open returns a reader for the given path: an empty path reads the Example, Stdin reads from
// the standard input, and anything else is a file. Files ending in ZstdSuffix are decompressed.
//
// The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	switch path {
	case "":
		return io.NopCloser(strings.NewReader(Example)), nil
	case Stdin:
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input %q", path)
	}
	if !strings.HasSuffix(path, ZstdSuffix) {
		return f, nil
	}
	decoder, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "failed to create zstd decoder for %q", path)
	}
	return &zstdFile{Decoder: decoder, file: f}, nil
}

// ReadAll reads the whole content of path, see Open.
func ReadAll(path string) ([]byte, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input %q", path)
	}
	return data, nil
}

// zstdFile closes both the decoder and the underlying file.
type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}
