package sets

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/lavaGo/internal/parameters"
	"github.com/pkg/errors"
	"strings"
)

// Kind of backend used to implement a Set.
type Kind int

const (
	// Hash uses a Go map keyed by the value itself.
	Hash Kind = iota

	// Packed uses a Go map keyed by the packed uint64 representation of the values.
	Packed

	// BTree uses github.com/google/btree, with keys kept sorted.
	BTree

	// Sorted keeps a sorted slice and uses binary search. Insertion and deletion are O(n).
	Sorted

	numKinds
)

var kindNames = [numKinds]string{"hash", "packed", "btree", "sorted"}

// String returns the name of the kind, as used in configuration strings.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists all available backends.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for ii := range kinds {
		kinds[ii] = Kind(ii)
	}
	return kinds
}

const (
	// DefaultDegree of the B-tree nodes.
	DefaultDegree = 32
)

// Config selects and configures a Set backend.
type Config struct {
	Kind Kind

	// Capacity is the number of elements to reserve space for, used by Hash, Packed and Sorted.
	Capacity int

	// Degree of the B-tree, used by BTree.
	Degree int
}

// DefaultConfig for the given kind.
func DefaultConfig(kind Kind) Config {
	return Config{Kind: kind, Degree: DefaultDegree}
}

// ParseConfig parses a backend configuration: the backend name optionally followed by a colon
// (":") and a comma-separated list of parameters. Examples: "hash", "hash:capacity=4096",
// "btree:degree=8", "sorted".
//
// An empty config returns the default Hash backend.
func ParseConfig(config string) (Config, error) {
	config = strings.TrimSpace(config)
	name, paramsStr, _ := strings.Cut(config, ":")
	if name == "" {
		name = Hash.String()
	}
	kind := Kind(-1)
	for _, k := range Kinds() {
		if k.String() == name {
			kind = k
			break
		}
	}
	if kind < 0 {
		return Config{}, errors.Errorf("unknown set backend %q, valid values are %q", name, kindNames)
	}

	c := DefaultConfig(kind)
	params := parameters.NewFromConfigString(paramsStr)
	var err error
	switch kind {
	case Hash, Packed, Sorted:
		c.Capacity, err = parameters.PopParamOr(params, "capacity", c.Capacity)
		if err == nil && c.Capacity < 0 {
			err = errors.Errorf("capacity must be >= 0, got %d", c.Capacity)
		}
	case BTree:
		c.Degree, err = parameters.PopParamOr(params, "degree", c.Degree)
		if err == nil && c.Degree < 2 {
			err = errors.Errorf("degree must be >= 2, got %d", c.Degree)
		}
	}
	if err == nil {
		err = parameters.CheckAllUsed(params)
	}
	if err != nil {
		return Config{}, errors.WithMessagef(err, "failed to configure set backend %q", name)
	}
	return c, nil
}

// String returns the configuration string that ParseConfig would parse back to c.
func (c Config) String() string {
	var params []string
	switch c.Kind {
	case Hash, Packed, Sorted:
		if c.Capacity > 0 {
			params = append(params, fmt.Sprintf("capacity=%d", c.Capacity))
		}
	case BTree:
		if c.Degree != DefaultDegree {
			params = append(params, fmt.Sprintf("degree=%d", c.Degree))
		}
	}
	if len(params) == 0 {
		return c.Kind.String()
	}
	return c.Kind.String() + ":" + strings.Join(params, ",")
}

func panicUnknownKind(kind Kind) {
	exceptions.Panicf("sets: unknown backend kind %s", kind)
}
