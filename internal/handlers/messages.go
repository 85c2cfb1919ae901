package handlers

import (
	"errors"

	"sqlpractice/internal/services"
)

const (
	msgEnterQuery       = "Please enter a SQL query."
	msgSelectOnly       = "Only SELECT queries are allowed in this beginner app (for safety)."
	msgSingleStatement  = "Only one SQL statement can be run at a time."
	msgResetDone        = "Database reset done ✅"
	msgReturnedRowsFmt  = "Returned %d rows ✅"
	msgTruncatedRowsFmt = "Showing the first %d rows ✅ (the query returned more)"
)

// userMessage turns a validation error into the text shown next to the
// query box. Engine errors are shown as is.
func userMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		return msgEnterQuery
	case errors.Is(err, services.ErrNotSelect):
		return msgSelectOnly
	case errors.Is(err, services.ErrMultipleStatements):
		return msgSingleStatement
	default:
		return err.Error()
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrEmptyQuery) ||
		errors.Is(err, services.ErrNotSelect) ||
		errors.Is(err, services.ErrMultipleStatements)
}
