package gateway

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
)

// Category classifies gateway failures.
type Category int

// Failure categories.
const (
	// QueryFailure covers malformed queries and runtime errors reported by the backend.
	QueryFailure Category = iota
	// ConnectionFailure means the backend could not be reached.
	ConnectionFailure
)

func (c Category) String() string {
	switch c {
	case ConnectionFailure:
		return "connection failure"
	case QueryFailure:
		return "query failure"
	default:
		return "unknown failure"
	}
}

// Sentinel errors matched by errors.Is against a *QueryError of the same category.
var (
	ErrConnection = errors.New("connection failure")
	ErrQuery      = errors.New("query failure")
)

// QueryError is the structured failure returned by gateways.
type QueryError struct {
	Category Category
	Message  string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's category.
func (e *QueryError) Is(target error) bool {
	switch target {
	case ErrConnection:
		return e.Category == ConnectionFailure
	case ErrQuery:
		return e.Category == QueryFailure
	}
	return false
}

// NewConnectionError wraps err as a ConnectionFailure.
func NewConnectionError(err error) *QueryError {
	return &QueryError{Category: ConnectionFailure, Message: messageOf(err), Err: err}
}

// NewQueryError wraps err as a QueryFailure.
func NewQueryError(err error) *QueryError {
	return &QueryError{Category: QueryFailure, Message: messageOf(err), Err: err}
}

// AsQueryError returns err as a *QueryError, classifying unstructured errors
// as query failures. It returns nil for a nil err.
func AsQueryError(err error) *QueryError {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe
	}
	return NewQueryError(err)
}

// ClassifySQLError maps a database/sql error to a *QueryError.
// Broken or closed connections and network errors are connection failures;
// everything else is a query failure.
func ClassifySQLError(err error) *QueryError {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe
	}
	if isConnectionError(err) {
		return NewConnectionError(err)
	}
	return NewQueryError(err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func messageOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
