// This file declares the record types, limits, and sentinel errors of the
// legacy text adapters.
package routefile

import "errors"

// MaxFieldLen caps each tab-delimited field, names and numbers alike.
// Inherited from the reference format's fixed 250-byte string buffers.
const MaxFieldLen = 250

// Sentinel errors for file parsing.
var (
	// ErrMalformedRecord indicates a line that did not parse: wrong field
	// count, an empty field, or an unparseable distance.
	ErrMalformedRecord = errors.New("routefile: malformed record")

	// ErrFieldTooLong indicates a field longer than MaxFieldLen bytes.
	ErrFieldTooLong = errors.New("routefile: field exceeds maximum length")
)

// EdgeRecord is one parsed line of a distance file: an undirected edge
// between two named places. Distance is validated for shape here (an
// integer); positivity is enforced by core.Graph during construction.
type EdgeRecord struct {
	From     string
	To       string
	Distance int64
}

// QueryRecord is one parsed line of a query file: a request for the
// shortest route from Source to Dest.
type QueryRecord struct {
	Source string
	Dest   string
}
