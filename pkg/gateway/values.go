package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/querie/pkg/core"
)

// Layouts used when stringifying temporal values.
const (
	TimestampLayout = "2006-01-02 15:04:05.999999999 UTC"
	DateLayout      = "2006-01-02"
)

// FormatTimestamp renders t in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatFloat renders f with the shortest representation that round-trips.
func FormatFloat(f float64, bitSize int) string {
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// FormatInteger renders any Go integer value. The second result is false
// when v is not an integer.
func FormatInteger(v any) (string, bool) {
	switch x := v.(type) {
	case int:
		return strconv.FormatInt(int64(x), 10), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	}
	return "", false
}

// KindForTypeName maps a database type name, as reported by
// sql.ColumnType.DatabaseTypeName, to a value kind. The second result is
// false for names the mapping does not recognize.
func KindForTypeName(name string) (core.ValueKind, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = strings.TrimSpace(n[:i])
	}
	if n == "" || strings.HasSuffix(n, "[]") {
		return core.KindText, false
	}
	if strings.HasPrefix(n, "TIMESTAMP") {
		return core.KindTimestamp, true
	}

	switch n {
	case "BOOL", "BOOLEAN":
		return core.KindBoolean, true
	case "INT", "INTEGER", "SMALLINT", "BIGINT", "TINYINT", "HUGEINT",
		"UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT",
		"INT2", "INT4", "INT8",
		"REAL", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "DOUBLE PRECISION",
		"DECIMAL", "NUMERIC":
		return core.KindNumber, true
	case "DATE", "DATETIME", "TIMESTAMPTZ":
		return core.KindTimestamp, true
	case "TEXT", "VARCHAR", "CHAR", "CHARACTER", "CHARACTER VARYING",
		"NVARCHAR", "NCHAR", "BPCHAR", "NAME", "STRING", "CLOB":
		return core.KindText, true
	}
	return core.KindText, false
}

// CellFromValue builds a cell from a value scanned through database/sql.
// typeName is the driver-reported column type and may be empty. Values of
// Go types the mapping does not know become UnmappedValue with KindText.
func CellFromValue(column, typeName string, v any) core.Cell {
	declared, known := KindForTypeName(typeName)
	cell := core.Cell{Column: column, Kind: core.KindText}

	if v == nil {
		if known {
			cell.Kind = declared
		}
		return cell
	}

	if s, ok := FormatInteger(v); ok {
		if known && declared == core.KindBoolean {
			cell.Value = strconv.FormatBool(s != "0")
			cell.Kind = core.KindBoolean
			return cell
		}
		cell.Value = s
		cell.Kind = core.KindNumber
		return cell
	}

	switch x := v.(type) {
	case bool:
		cell.Value = strconv.FormatBool(x)
		cell.Kind = core.KindBoolean
	case float32:
		cell.Value = FormatFloat(float64(x), 32)
		cell.Kind = core.KindNumber
	case float64:
		cell.Value = FormatFloat(x, 64)
		cell.Kind = core.KindNumber
	case time.Time:
		if strings.EqualFold(strings.TrimSpace(typeName), "DATE") {
			cell.Value = x.Format(DateLayout)
		} else {
			cell.Value = FormatTimestamp(x)
		}
		cell.Kind = core.KindTimestamp
	case string:
		cell.Value = x
		cell.Kind = declared
	case []byte:
		cell.Value = string(x)
		cell.Kind = declared
	case fmt.Stringer:
		if !known {
			cell.Value = core.UnmappedValue
			return cell
		}
		cell.Value = x.String()
		cell.Kind = declared
	default:
		cell.Value = core.UnmappedValue
	}
	return cell
}
