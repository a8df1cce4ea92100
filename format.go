package scfs

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// String returns a human-readable rendering of the matrix: a header of
// the selected clusters, then one line per feature with its id, the
// per-cluster statuses, and the registry description.
func (m *Matrix) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)

	fmt.Fprint(w, "feature")
	for _, cluster := range m.criteria.Clusters {
		fmt.Fprintf(w, "\t%s", cluster)
	}
	fmt.Fprint(w, "\tdescription\n")

	for _, row := range m.rows {
		fmt.Fprint(w, row.id)
		for _, s := range row.statuses {
			fmt.Fprintf(w, "\t%s", s)
		}
		// Pad rows short on statuses (an aborted run) so the
		// description stays in its column.
		for i := len(row.statuses); i < len(m.criteria.Clusters); i++ {
			fmt.Fprint(w, "\t-")
		}
		fmt.Fprintf(w, "\t%s\n", row.description)
	}

	w.Flush()
	return b.String()
}
