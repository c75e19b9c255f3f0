package core

import (
	"errors"
	"fmt"
	"strings"
)

// Field names reported by ValidationError.
const (
	FieldType        = "type"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldOwnerEmail  = "ownerEmail"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// ValidationError reports one or more fields that failed a business rule.
// It never corresponds to committed state: every mutation is all-or-nothing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// Has reports whether the named field is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// NotFoundError reports an operation referencing a nonexistent transaction.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

// InvalidTypeError reports a catalog query with an unrecognized transaction
// type. This is a programming or configuration error, not user input.
type InvalidTypeError struct {
	Type TransactionType
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid transaction type %q", string(e.Type))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
