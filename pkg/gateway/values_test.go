package gateway

import (
	"testing"
	"time"

	"github.com/leapstack-labs/querie/pkg/core"
	"github.com/stretchr/testify/assert"
)

type opaque struct{}

type stringer struct{}

func (stringer) String() string { return "12.50" }

func TestKindForTypeName(t *testing.T) {
	tests := []struct {
		name  string
		want  core.ValueKind
		known bool
	}{
		{"INTEGER", core.KindNumber, true},
		{"int8", core.KindNumber, true},
		{"DECIMAL(18,3)", core.KindNumber, true},
		{"double precision", core.KindNumber, true},
		{"BOOLEAN", core.KindBoolean, true},
		{"TIMESTAMP WITH TIME ZONE", core.KindTimestamp, true},
		{"DATE", core.KindTimestamp, true},
		{"VARCHAR(255)", core.KindText, true},
		{"TEXT", core.KindText, true},
		{"", core.KindText, false},
		{"INTEGER[]", core.KindText, false},
		{"JSONB", core.KindText, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := KindForTypeName(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestCellFromValue(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		typeName string
		value    any
		want     core.Cell
	}{
		{"null", "TEXT", nil, core.Cell{Column: "c", Value: "", Kind: core.KindText}},
		{"null number", "INTEGER", nil, core.Cell{Column: "c", Value: "", Kind: core.KindNumber}},
		{"int64", "", int64(42), core.Cell{Column: "c", Value: "42", Kind: core.KindNumber}},
		{"int as boolean", "BOOLEAN", int64(1), core.Cell{Column: "c", Value: "true", Kind: core.KindBoolean}},
		{"bool", "", false, core.Cell{Column: "c", Value: "false", Kind: core.KindBoolean}},
		{"float", "REAL", 1.5, core.Cell{Column: "c", Value: "1.5", Kind: core.KindNumber}},
		{"whole float", "", float64(2), core.Cell{Column: "c", Value: "2", Kind: core.KindNumber}},
		{"timestamp", "TIMESTAMP", ts, core.Cell{Column: "c", Value: "2024-01-01 10:00:00 UTC", Kind: core.KindTimestamp}},
		{"date", "DATE", ts, core.Cell{Column: "c", Value: "2024-01-01", Kind: core.KindTimestamp}},
		{"string", "VARCHAR", "héllo", core.Cell{Column: "c", Value: "héllo", Kind: core.KindText}},
		{"bytes", "", []byte("raw"), core.Cell{Column: "c", Value: "raw", Kind: core.KindText}},
		{"numeric text", "NUMERIC", "3.14", core.Cell{Column: "c", Value: "3.14", Kind: core.KindNumber}},
		{"known stringer", "DECIMAL(4,2)", stringer{}, core.Cell{Column: "c", Value: "12.50", Kind: core.KindNumber}},
		{"unknown stringer", "", stringer{}, core.Cell{Column: "c", Value: core.UnmappedValue, Kind: core.KindText}},
		{"unknown type", "MAP", opaque{}, core.Cell{Column: "c", Value: core.UnmappedValue, Kind: core.KindText}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellFromValue("c", tt.typeName, tt.value))
		})
	}
}
