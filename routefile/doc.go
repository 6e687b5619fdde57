// Package routefile reads and writes the legacy text formats around the
// shortest-path core: tab-delimited distance and query files in, route
// reports out.
//
// File formats:
//
//   - Distance file ("ukcities.txt" style): one edge per line,
//     `<name>TAB<name>TAB<distance>`, lines terminated by CRLF or LF.
//     Distances are positive integers; a non-positive distance is
//     malformed input and aborts the whole load.
//   - Query file ("citypairs.txt" style): one query per line,
//     `<source>TAB<destination>`, same line endings.
//   - Fields are capped at MaxFieldLen bytes and must be non-empty.
//
// Every non-empty physical line must parse. A line that does not is
// reported with its 1-based line number via ErrMalformedRecord — the
// moral equivalent of the reference program's line-count check, with a
// better finger pointed at the offender.
//
// The readers produce typed records (EdgeRecord, QueryRecord) and the
// writer consumes a dijkstra.Route; nothing in the core packages knows
// these encodings exist.
//
// Errors:
//
//	ErrMalformedRecord - a line did not split into the expected fields,
//	                     a field was empty, or a distance did not parse.
//	ErrFieldTooLong    - a field exceeded MaxFieldLen bytes.
package routefile
