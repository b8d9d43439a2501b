package indicators

import "time"

// Table is an immutable ordered set of derived numeric columns aligned with
// a trimmed date index. All columns have the same length and no NaN values.
type Table struct {
	dates []time.Time
	order []string
	cols  map[string][]float64
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.dates)
}

// Dates returns the date index.
func (t *Table) Dates() []time.Time {
	return t.dates
}

// Columns returns the column names in build order.
func (t *Table) Columns() []string {
	return t.order
}

// Column returns a named column, or nil when absent.
func (t *Table) Column(name string) []float64 {
	return t.cols[name]
}

// Last returns the latest value of a named column, or 0 when absent or empty.
func (t *Table) Last(name string) float64 {
	col := t.cols[name]
	if len(col) == 0 {
		return 0
	}
	return col[len(col)-1]
}

// Row copies the values of the given columns at one row index, in order.
func (t *Table) Row(i int, names []string) []float64 {
	out := make([]float64, len(names))
	for j, name := range names {
		out[j] = t.cols[name][i]
	}
	return out
}
