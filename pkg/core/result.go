package core

import "time"

// ValueKind classifies a stringified cell value.
// Kinds are assigned by gateways only; nothing downstream re-parses Value.
type ValueKind int

// Value kinds.
const (
	KindText ValueKind = iota
	KindNumber
	KindBoolean
	KindTimestamp
)

// UnmappedValue is the value substituted for column types a gateway
// cannot translate. Such cells always carry KindText.
const UnmappedValue = "PARSE ERROR"

// String returns the lower-case name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Cell is one column value of a result row.
type Cell struct {
	Column string    `json:"column" yaml:"column"`
	Value  string    `json:"value" yaml:"value"`
	Kind   ValueKind `json:"kind" yaml:"kind"`
}

// Row is an ordered sequence of cells.
type Row []Cell

// ResultSet holds the rows produced by exactly one query execution.
type ResultSet struct {
	Rows []Row

	// Query is the text that produced the set.
	Query string
	// ExecutedAt and Duration describe the execution; zero when unknown.
	ExecutedAt time.Time
	Duration   time.Duration
	// Failed marks a synthetic set that reports a gateway error.
	Failed bool
}

// Columns returns the column names, taken from the first row.
// An empty set has no columns.
func (rs ResultSet) Columns() []string {
	if len(rs.Rows) == 0 {
		return nil
	}
	cols := make([]string, len(rs.Rows[0]))
	for i, c := range rs.Rows[0] {
		cols[i] = c.Column
	}
	return cols
}

// Values returns the row values as plain strings, in column order.
func (rs ResultSet) Values() [][]string {
	out := make([][]string, len(rs.Rows))
	for i, row := range rs.Rows {
		vals := make([]string, len(row))
		for j, c := range row {
			vals[j] = c.Value
		}
		out[i] = vals
	}
	return out
}

// Len returns the number of rows.
func (rs ResultSet) Len() int {
	return len(rs.Rows)
}
