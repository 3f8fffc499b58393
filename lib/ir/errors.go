package ir

import (
	"fmt"

	"github.com/pkg/errors"
)

type IdentifierKind string

const (
	IdentifierKindTable  IdentifierKind = "table"
	IdentifierKindColumn IdentifierKind = "column"
)

// DuplicateIdentifierError is returned when two objects of one snapshot
// share an identity, e.g. two tables with the same name.
type DuplicateIdentifierError struct {
	Kind  IdentifierKind
	Table string
	Name  string
}

func (err *DuplicateIdentifierError) Error() string {
	if err.Kind == IdentifierKindColumn {
		return fmt.Sprintf("found two columns with name %q in table %q", err.Name, err.Table)
	}
	return fmt.Sprintf("found two %ss with name %q", err.Kind, err.Name)
}

// IsDuplicateIdentifier reports whether err, or anything it wraps, is a DuplicateIdentifierError
func IsDuplicateIdentifier(err error) bool {
	var dupe *DuplicateIdentifierError
	return errors.As(err, &dupe)
}
