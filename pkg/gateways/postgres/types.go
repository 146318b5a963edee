package postgres

import (
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/leapstack-labs/querie/pkg/core"
	"github.com/leapstack-labs/querie/pkg/gateway"
)

// kindForOID returns the value kind for a column type OID.
// The second result is false for types without a mapping.
func kindForOID(oid uint32) (core.ValueKind, bool) {
	switch oid {
	case pgtype.BoolOID:
		return core.KindBoolean, true
	case pgtype.TextOID, pgtype.VarcharOID, pgtype.BPCharOID, pgtype.QCharOID, pgtype.NameOID:
		return core.KindText, true
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID,
		pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID:
		return core.KindNumber, true
	case pgtype.TimestampOID, pgtype.TimestamptzOID, pgtype.DateOID:
		return core.KindTimestamp, true
	}
	return core.KindText, false
}

// cellFor stringifies one decoded value. NULL becomes an empty string of the
// column's kind; unmapped types become core.UnmappedValue.
func cellFor(column string, oid uint32, v any) core.Cell {
	kind, ok := kindForOID(oid)
	if !ok {
		return core.Cell{Column: column, Value: core.UnmappedValue, Kind: core.KindText}
	}
	if v == nil {
		return core.Cell{Column: column, Kind: kind}
	}

	value, ok := formatValue(oid, v)
	if !ok {
		return core.Cell{Column: column, Value: core.UnmappedValue, Kind: core.KindText}
	}
	return core.Cell{Column: column, Value: value, Kind: kind}
}

func formatValue(oid uint32, v any) (string, bool) {
	switch oid {
	case pgtype.BoolOID:
		b, ok := v.(bool)
		if !ok {
			return "", false
		}
		if b {
			return "true", true
		}
		return "false", true

	case pgtype.TextOID, pgtype.VarcharOID, pgtype.BPCharOID, pgtype.NameOID, pgtype.QCharOID:
		return textValue(v)

	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID:
		return gateway.FormatInteger(v)

	case pgtype.Float4OID:
		f, ok := v.(float32)
		if !ok {
			return "", false
		}
		return gateway.FormatFloat(float64(f), 32), true

	case pgtype.Float8OID:
		f, ok := v.(float64)
		if !ok {
			return "", false
		}
		return gateway.FormatFloat(f, 64), true

	case pgtype.NumericOID:
		return numericValue(v)

	case pgtype.TimestampOID, pgtype.TimestamptzOID:
		t, ok := v.(time.Time)
		if !ok {
			return "", false
		}
		return gateway.FormatTimestamp(t), true

	case pgtype.DateOID:
		t, ok := v.(time.Time)
		if !ok {
			return "", false
		}
		return t.Format(gateway.DateLayout), true
	}
	return "", false
}

func textValue(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case rune:
		return string(x), true
	case byte:
		return string(rune(x)), true
	}
	return "", false
}

// numericValue renders numeric in plain decimal notation without going
// through float64, so no precision is lost.
func numericValue(v any) (string, bool) {
	switch x := v.(type) {
	case pgtype.Numeric:
		return numericString(x)
	case float64:
		return gateway.FormatFloat(x, 64), true
	}
	return "", false
}

func numericString(n pgtype.Numeric) (string, bool) {
	if !n.Valid {
		return "", false
	}
	if n.NaN {
		return "NaN", true
	}
	switch n.InfinityModifier {
	case pgtype.Infinity:
		return "Infinity", true
	case pgtype.NegativeInfinity:
		return "-Infinity", true
	}
	if n.Int == nil {
		return "0", true
	}

	digits := new(big.Int).Abs(n.Int).String()
	sign := ""
	if n.Int.Sign() < 0 {
		sign = "-"
	}

	if n.Exp >= 0 {
		return sign + digits + strings.Repeat("0", int(n.Exp)), true
	}

	scale := int(-n.Exp)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	point := len(digits) - scale
	return sign + digits[:point] + "." + digits[point:], true
}
