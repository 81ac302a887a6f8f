package model

// MetricColumns is every selectable report column, in output order.
// "Name" is the identifier column; the rest are numeric metrics.
var MetricColumns = []string{
	"Name",
	"Total_Counts",
	"UE_Counts",
	"LF_Counts",
	"RF_Counts",
	"Avg_Velocity",
	"UE_Velocity",
	"LF_Velocity",
	"RF_Velocity",
	"Avg_Async",
	"UE_Async",
	"LF_Async",
	"RF_Async",
}

// KnownColumn reports whether name is a selectable column.
func KnownColumn(name string) bool {
	for _, c := range MetricColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Table is the accumulating session table: one MetricsRecord per session,
// or per (session, segment) pair. Append-only during a batch run.
type Table struct {
	Rows []MetricsRecord
}

// Append adds a row to the table.
func (t *Table) Append(rec MetricsRecord) {
	t.Rows = append(t.Rows, rec)
}
