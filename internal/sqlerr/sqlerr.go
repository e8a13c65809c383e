// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes reported by PostgreSQL and turns them into
// human-readable descriptions. Repositories wrap every failure with
// Wrap so callers get an error value that can be shown as-is; the HTTP
// layer then maps those errors to API responses with HandleError.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a coarse classification of a PostgreSQL error.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	StringDataRightTruncation Code = "string_data_right_truncation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	InvalidDatetimeFormat     Code = "invalid_datetime_format"
	SerializationFailure      Code = "serialization_failure"
	DeadlockDetected          Code = "deadlock_detected"
	QueryCanceled             Code = "query_canceled"
	UndefinedTable            Code = "undefined_table"
	ConnectionException       Code = "connection_exception"
)

var sqlStateCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22001": StringDataRightTruncation,
	"22P02": InvalidTextRepresentation,
	"22007": InvalidDatetimeFormat,
	"22008": InvalidDatetimeFormat,
	"40001": SerializationFailure,
	"40P01": DeadlockDetected,
	"57014": QueryCanceled,
	"42P01": UndefinedTable,
}

// MapCode maps a SQLSTATE to a Code. Class 08 is always a connection exception.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}
	return Other
}

// Severity mirrors the PostgreSQL severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity converts the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	case SeverityDebug:
		return SeverityDebug
	case SeverityInfo:
		return SeverityInfo
	case SeverityLog:
		return SeverityLog
	default:
		return SeverityError
	}
}

// Error is a PostgreSQL error converted into our own type.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ErrNotFound marks the "absent" outcome of a lookup. It is a normal result,
// distinct from a storage failure.
var ErrNotFound = errors.New("record not found")

// ErrMissingID is returned when an operation needs a persisted record and
// got one whose ID is still zero.
var ErrMissingID = errors.New("record has no id")

// OpError is the error every repository method returns on failure.
//
// Message is a human-readable description suitable for end users;
// Err keeps the cause (ErrNotFound, *Error, a context error, ...).
type OpError struct {
	Op      string
	Entity  string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Entity, e.Message)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is the "absent" outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
