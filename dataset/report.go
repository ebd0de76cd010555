package dataset

import "github.com/google/uuid"

// Report summarizes one entity kind's ingest pass: how many rows were
// read, how many were dropped (missing mandatory field, unparsable or
// out-of-range value, or unresolvable parent code), and how many
// duplicates were merged into an existing row rather than appended
// (spec §6: "duplicates ... are deduplicated").
type Report struct {
	BuildID         string
	Kind            string
	RowsRead        int
	RowsDropped     int
	DuplicatesMerged int
}

// BuildReport stamps a Report with a fresh BuildID, so two builds
// from the same input files are still distinguishable in logs.
func BuildReport(kind string, rowsRead, rowsDropped, duplicatesMerged int) Report {
	return Report{
		BuildID:          uuid.NewString(),
		Kind:             kind,
		RowsRead:         rowsRead,
		RowsDropped:      rowsDropped,
		DuplicatesMerged: duplicatesMerged,
	}
}
