// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"netsweep/internal/core/domain"
)

// WriteTable imprime una tabla legible con los hosts que respondieron,
// en orden de finalización.
func WriteTable(out io.Writer, rs *domain.ResultSet) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	// Header con información del scan
	fmt.Fprintf(w, "\n=== netsweep results ===\n")
	fmt.Fprintf(w, "Subnet:\t%s\n", rs.Prefix.CIDR())
	fmt.Fprintf(w, "Duration:\t%s\n", rs.Metadata.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "Alive:\t%d/%d\n", rs.Len(), rs.Metadata.Probed)
	if rs.Metadata.Failed > 0 {
		fmt.Fprintf(w, "Failed probes:\t%d\n", rs.Metadata.Failed)
	}
	fmt.Fprintln(w)

	if rs.IsEmpty() {
		fmt.Fprintln(w, "No hosts responded.")
	} else {
		fmt.Fprintln(w, "ADDRESS\tTIMESTAMP\tRTT")
		fmt.Fprintln(w, "-------\t---------\t---")

		for _, e := range rs.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				e.Address,
				e.FormattedTimestamp(),
				formatRTT(e.RTT),
			)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	fmt.Fprintln(out)
	return nil
}

func formatRTT(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(100 * time.Microsecond).String()
}
