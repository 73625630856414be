package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record with the given key does not exist.
	ErrNotFound = errors.New("catalog: record not found")
	// ErrDuplicateKey is returned when creating a record whose primary key is taken.
	ErrDuplicateKey = errors.New("catalog: duplicate primary key")
	// ErrReferenceNotFound is wrapped by every ReferenceError.
	ErrReferenceNotFound = errors.New("catalog: referenced record does not exist")
	// ErrUnknownColumn is returned by FindBy for columns that are neither the
	// primary key nor a declared reference.
	ErrUnknownColumn = errors.New("catalog: column is not queryable")
)

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	KindRequired  ErrorKind = "required"
	KindMaxLength ErrorKind = "max_length"
	KindURL       ErrorKind = "url"
	KindEmail     ErrorKind = "email"
	KindChoice    ErrorKind = "choice"
	KindFormat    ErrorKind = "format"
	KindRange     ErrorKind = "range"
	KindParent    ErrorKind = "parent"
	KindInvalid   ErrorKind = "invalid"
)

// FieldError is one failed constraint. Field is the json name of the field;
// Param is the constraint argument (the max length, the allowed choices, ...).
type FieldError struct {
	Field string
	Kind  ErrorKind
	Param string
}

func (e FieldError) String() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Kind, e.Param)
}

// ValidationError collects every field constraint a record failed.
type ValidationError struct {
	Table  string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return fmt.Sprintf("%s: validation failed: %s", e.Table, strings.Join(msgs, "; "))
}

// Has reports whether field failed with the given kind.
func (e *ValidationError) Has(field string, kind ErrorKind) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field string, kind ErrorKind, param string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Kind: kind, Param: param})
}

// ReferenceError reports a reference to a record that does not exist.
type ReferenceError struct {
	Table      string
	Field      string
	References string
	Key        any
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s.%s: %s %v does not exist", e.Table, e.Field, e.References, e.Key)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceNotFound }

// translate maps driver errors onto the catalog taxonomy. Anything it does
// not recognise is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	}

	var code string
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code = string(pqErr.Code)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code = pgErr.Code
	}
	switch code {
	case "23505":
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case "23503":
		return fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
	}
	return err
}
