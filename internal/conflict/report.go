package conflict

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport renders conflicts as the plain-text report printed by the audit
// job. Every conflict is written; nothing is summarised away.
func WriteReport(w io.Writer, conflicts []Conflict) error {
	bw := bufio.NewWriter(w)

	if len(conflicts) == 0 {
		fmt.Fprintln(bw, "No booking conflicts found!")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Found %d booking conflict(s):\n\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Fprintf(bw, "Conflict %d:\n", i+1)
		fmt.Fprintf(bw, "  Room: %s (ID: %d)\n", c.RoomLabel, c.RoomID)
		fmt.Fprintf(bw, "  %s (%s): %s\n", c.A.DisplayID, c.A.GuestName, c.A.DateRange)
		fmt.Fprintf(bw, "  %s (%s): %s\n", c.B.DisplayID, c.B.GuestName, c.B.DateRange)
		fmt.Fprintf(bw, "  Type: %s\n\n", c.Kind)
	}
	return bw.Flush()
}
