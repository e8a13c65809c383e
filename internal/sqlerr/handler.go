package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bhzconnection/escola/internal/errs"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// Wrap converts a storage failure into an *OpError whose message can be shown
// to a user. entity is the table name, op the repository operation.
//
//   - nil stays nil
//   - an *OpError is returned unchanged
//   - pgx.ErrNoRows / sql.ErrNoRows become ErrNotFound
//   - *pgconn.PgError becomes *Error with a friendly message
//   - timeouts and cancellations get their own message
func Wrap(entity, op string, err error) error {
	if err == nil {
		return nil
	}

	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NotFound(entity, op)
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		return &OpError{Op: op, Entity: entity, Message: formatUserFriendlyMessage(sqlErr), Err: sqlErr}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return &OpError{Op: op, Entity: entity, Message: "the database did not answer in time", Err: err}
	case errors.Is(err, context.Canceled):
		return &OpError{Op: op, Entity: entity, Message: "the operation was canceled", Err: err}
	case isConnectionFailure(err):
		return &OpError{Op: op, Entity: entity, Message: "the database connection failed", Err: err}
	}

	return &OpError{Op: op, Entity: entity, Message: err.Error(), Err: err}
}

// isConnectionFailure reports errors raised before the server answered, which
// carry no SQLSTATE.
func isConnectionFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	var netErr *net.OpError
	return errors.As(err, &connectErr) || errors.As(err, &netErr)
}

// MissingID builds the error for an operation that received an unsaved record.
func MissingID(entity, op string) error {
	return &OpError{
		Op:      op,
		Entity:  entity,
		Message: fmt.Sprintf("%s has no id", humanizeText(entity)),
		Err:     ErrMissingID,
	}
}

// NotFound builds the "absent" outcome for entity.
func NotFound(entity, op string) error {
	return &OpError{
		Op:      op,
		Entity:  entity,
		Message: fmt.Sprintf("%s not found", humanizeText(entity)),
		Err:     ErrNotFound,
	}
}

// generateErrorCode creates "<DOMAIN>_<ACTION>" codes, e.g. PROFESSOR_ALREADY_EXISTS.
// Table names in this schema are singular, so the table is used verbatim.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, StringDataRightTruncation, InvalidTextRepresentation, InvalidDatetimeFormat:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces an end-user-facing description of sqlErr.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		column := extractColumnForForeignKey(sqlErr.TableName, sqlErr.ConstraintName)
		referenced := getEntityName("", column)
		if isReferencedRowDelete(sqlErr.Message) {
			return fmt.Sprintf("The %s is still referenced by %s records", referenced, humanizeText(sqlErr.TableName))
		}
		return fmt.Sprintf("The referenced %s does not exist", referenced)

	case UniqueViolation:
		entityName := getEntityName(sqlErr.TableName, "")
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			return fmt.Sprintf("A %s with this %s already exists", entityName, humanizeText(column))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case StringDataRightTruncation:
		return "A value is longer than the field allows"

	case InvalidTextRepresentation, InvalidDatetimeFormat:
		return "A value has an invalid format"

	case ConnectionException:
		return "The database connection failed"

	case QueryCanceled:
		return "The database did not answer in time"

	default:
		return "An error occurred while processing your request"
	}
}

// isReferencedRowDelete reports whether a foreign key violation was raised by
// deleting a parent row rather than inserting a child row.
func isReferencedRowDelete(message string) bool {
	return strings.HasPrefix(message, "update or delete on table")
}

// getEntityName infers an entity name from table/column data.
//
//  1. A column ending in "_id" names the referenced entity ("aluno_id" -> "Aluno").
//  2. Otherwise the table name.
//  3. Otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}
	if tableName != "" {
		return humanizeText(tableName)
	}
	return "record"
}

// humanizeText converts snake_case into Title Case ("periodo_letivo" -> "Periodo Letivo").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.BrazilianPortuguese).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
//  1. "unique_<table>_<column>"
//  2. "<table>_<column>_(key|ukey)", the PostgreSQL default ("professor_email_key")
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyPattern.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKey infers the column from a "<table>_<column>_fkey" constraint.
// PostgreSQL does not fill ColumnName for foreign key violations.
func extractColumnForForeignKey(tableName, constraintName string) string {
	if !strings.HasSuffix(constraintName, "_fkey") {
		return ""
	}
	column := strings.TrimSuffix(constraintName, "_fkey")
	if tableName != "" {
		column = strings.TrimPrefix(column, tableName+"_")
	}
	return column
}

// HandleError converts any error reaching the HTTP layer into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - not found: 404
//   - unique violation: 409
//   - other constraint and format violations: 400
//   - timeouts and connection failures: 503
//   - everything else: 500 without details
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var opErr *OpError
	hasOp := errors.As(err, &opErr)

	if errors.Is(err, ErrNotFound) {
		if hasOp {
			code := generateErrorCode(opErr.Entity, Other)
			code = strings.TrimSuffix(code, "_ERROR") + "_NOT_FOUND"
			return errs.NewNotFoundError(opErr.Message, true, &code)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	if errors.Is(err, ErrMissingID) {
		message := "The record has no id"
		if hasOp {
			message = opErr.Message
		}
		return errs.NewBadRequestError(message, true, nil, nil, nil)
	}

	var sqlErr *Error
	var pgerr *pgconn.PgError
	if !errors.As(err, &sqlErr) && errors.As(err, &pgerr) {
		sqlErr = ConvertPgError(pgerr)
	}

	if sqlErr != nil {
		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			if isReferencedRowDelete(sqlErr.Message) {
				return errs.NewConflictError(userMessage, true, &errorCode)
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case UniqueViolation:
			return errs.NewConflictError(userMessage, true, &errorCode)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)

		case CheckViolation, StringDataRightTruncation, InvalidTextRepresentation, InvalidDatetimeFormat:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case ConnectionException, QueryCanceled:
			return errs.NewServiceUnavailableError(userMessage)

		default:
			return errs.NewInternalServerError()
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return errs.NewServiceUnavailableError("The database did not answer in time")
	case isConnectionFailure(err):
		return errs.NewServiceUnavailableError("The database connection failed")
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
