package routefile

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cityroute/dijkstra"
)

// hopSeparator joins route hops in reports, as the reference output did.
const hopSeparator = " ---> "

// WriteReport writes one successful route in the legacy report shape:
//
//	<source> to <dest> is <distance>km
//
//	Route:
//	<hop> ---> <hop> ---> <hop>
//
// followed by a blank line separating it from the next report.
func WriteReport(w io.Writer, route dijkstra.Route) error {
	_, err := fmt.Fprintf(w, "%s to %s is %dkm\n\nRoute:\n%s\n\n",
		route.Source, route.Dest, route.Distance,
		strings.Join(route.Hops, hopSeparator))

	return err
}

// WriteReportError writes a per-query failure (unknown name, unreachable
// destination) in place of a route, so the queries that follow still get
// their reports.
func WriteReportError(w io.Writer, source, dest string, queryErr error) error {
	_, err := fmt.Fprintf(w, "%s to %s: %v\n\n", source, dest, queryErr)

	return err
}
