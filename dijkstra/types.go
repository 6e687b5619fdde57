// This file declares the sentinel errors, the Infinite sentinel, and the
// functional options accepted by Dijkstra.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/cityroute/core"
)

// Sentinel errors returned by the Dijkstra engine.
var (
	// ErrEmptySource indicates the source name is empty (Source option
	// omitted or passed an empty string).
	ErrEmptySource = errors.New("dijkstra: source name is empty")

	// ErrNilGraph indicates a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source name is absent from the
	// graph. Queries never create nodes.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrUnreachable indicates the destination has no finite distance
	// from the source (disconnected component). Per-query condition;
	// other queries against the same graph remain valid.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")
)

// Infinite is the tentative distance of a node not yet reached.
// The engine guarantees Infinite is never used as an addition operand, so
// distances cannot silently overflow into nonsense.
const Infinite int64 = math.MaxInt64

// NoPredecessor marks a node with no recorded predecessor: the source
// itself, or any unreached node.
const NoPredecessor = core.NoNode

// Options configures a Dijkstra run.
//
// Source – name of the starting node (must be non-empty and present in
// the graph; validated by Dijkstra, not here).
type Options struct {
	Source string
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the name of the starting node for the run.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// DefaultOptions returns an Options initialized for the given source.
// Use as a starting point for further functional-option overrides.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
