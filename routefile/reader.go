package routefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cityroute/core"
)

// ReadEdges parses a distance file into edge records.
// Each non-empty line must be `<name>TAB<name>TAB<distance>`; CRLF and LF
// line endings are both accepted. The first malformed line aborts the
// read with ErrMalformedRecord (or ErrFieldTooLong) carrying its 1-based
// line number.
func ReadEdges(r io.Reader) ([]EdgeRecord, error) {
	var records []EdgeRecord

	err := eachLine(r, func(lineNo int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("%w: line %d: want 2 names and a distance, got %d field(s)",
				ErrMalformedRecord, lineNo, len(fields))
		}
		dist, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: distance %q is not an integer",
				ErrMalformedRecord, lineNo, fields[2])
		}
		records = append(records, EdgeRecord{From: fields[0], To: fields[1], Distance: dist})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ReadQueries parses a query file into query records.
// Each non-empty line must be `<source>TAB<destination>`; the error
// contract matches ReadEdges.
func ReadQueries(r io.Reader) ([]QueryRecord, error) {
	var records []QueryRecord

	err := eachLine(r, func(lineNo int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: want exactly 2 names, got %d field(s)",
				ErrMalformedRecord, lineNo, len(fields))
		}
		records = append(records, QueryRecord{Source: fields[0], Dest: fields[1]})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// LoadGraph reads a distance file and populates a fresh core.Graph.
// Construction errors are fatal for the whole load: the first malformed
// line or non-positive distance aborts with no partial graph returned.
func LoadGraph(r io.Reader) (*core.Graph, error) {
	records, err := ReadEdges(r)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, rec := range records {
		if err = g.AddEdge(rec.From, rec.To, rec.Distance); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// eachLine scans r line by line, strips a trailing CR, skips blank lines,
// splits on tabs, enforces per-field limits, and hands the fields to fn
// with the 1-based physical line number.
func eachLine(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		for _, f := range fields {
			if f == "" {
				return fmt.Errorf("%w: line %d: empty field", ErrMalformedRecord, lineNo)
			}
			if len(f) > MaxFieldLen {
				return fmt.Errorf("%w: line %d: field is %d bytes (max %d)",
					ErrFieldTooLong, lineNo, len(f), MaxFieldLen)
			}
		}
		if err := fn(lineNo, fields); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("routefile: read: %w", err)
	}

	return nil
}
