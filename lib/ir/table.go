package ir

import (
	"fmt"
)

type Table struct {
	Name string
	// RawDefinition is the complete CREATE TABLE statement as the table was
	// declared, without the trailing semicolon
	RawDefinition string
	Columns       []*Column
	Keys          []*Key
	UniqueKeys    []*Key
}

func (table *Table) IdentityMatches(other *Table) bool {
	if table == nil || other == nil {
		return false
	}
	return table.Name == other.Name
}

func (table *Table) AddColumn(col *Column) {
	table.Columns = append(table.Columns, col)
}

// AddKey files the key under the keys of its kind
func (table *Table) AddKey(key *Key) {
	switch key.Kind {
	case KeyKindUnique:
		table.UniqueKeys = append(table.UniqueKeys, key)
	default:
		table.Keys = append(table.Keys, key)
	}
}

// KeysOfKind returns the ordinary or unique keys of the table
func (table *Table) KeysOfKind(kind KeyKind) []*Key {
	if kind == KeyKindUnique {
		return table.UniqueKeys
	}
	return table.Keys
}

func (table *Table) String() string {
	return fmt.Sprintf("table %s (%d columns, %d keys, %d unique keys)", table.Name, len(table.Columns), len(table.Keys), len(table.UniqueKeys))
}

func (table *Table) Validate() []error {
	out := []error{}
	for i, column := range table.Columns {
		for _, other := range table.Columns[i+1:] {
			if column.IdentityMatches(other) {
				out = append(out, &DuplicateIdentifierError{
					Kind:  IdentifierKindColumn,
					Table: table.Name,
					Name:  column.Name,
				})
			}
		}
	}
	// keys are matched by content, a duplicated key name is not an identity problem
	return out
}
