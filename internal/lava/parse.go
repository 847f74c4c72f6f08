package lava

import (
	"bufio"
	"fmt"
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// Offset is added to every parsed cube, so no cube sits at coordinate 0 and the flood fill
// margin below the smallest cube never goes negative for the usual inputs.
var Offset = geom.Cube{1, 1, 1}

// ParseError reports a malformed input line.
type ParseError struct {
	// Line number, starting at 1.
	Line int

	// Text of the line.
	Text string

	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseCubes reads one cube per line formatted as "x,y,z", and returns them with Offset added.
// Blank lines are skipped. Duplicates are returned as is, they collapse once inserted in a set.
//
// Any malformed line, or a cube outside of geom.CoordinateRange once offset, fails the whole
// parsing with a *ParseError.
func ParseCubes(r io.Reader) ([]geom.Cube, error) {
	var cubes []geom.Cube
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := geom.ParseCube(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		c = c.Add(Offset)
		if err := c.CheckRange(); err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		cubes = append(cubes, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed reading cubes after line %d", lineNum)
	}
	return cubes, nil
}
