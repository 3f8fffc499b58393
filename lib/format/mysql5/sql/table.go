package sql

import (
	"strings"

	"github.com/dbsteward/mysqldiff/lib/output"
)

// TableCreateRaw is a CREATE TABLE statement taken verbatim from a table's declaration
type TableCreateRaw struct {
	Table      TableRef
	Definition string
}

// ToSql returns the definition untouched, it is expected to carry no terminator
func (self *TableCreateRaw) ToSql(q output.Quoter) string {
	return self.Definition
}

type TableAlterParts struct {
	Table TableRef
	Parts []TableAlterPart
}

type TableAlterPart interface {
	GetAlterPartSql(q output.Quoter) string
}

func NewTableAlter(table TableRef, parts ...TableAlterPart) *TableAlterParts {
	return &TableAlterParts{table, parts}
}

// ToSql renders all parts on one line, separated by ", ". A statement
// without any non-empty part renders as the empty string.
func (tap *TableAlterParts) ToSql(q output.Quoter) string {
	parts := make([]string, 0, len(tap.Parts))
	for _, part := range tap.Parts {
		partSql := part.GetAlterPartSql(q)
		if partSql == "" {
			continue
		}
		parts = append(parts, partSql)
	}
	if len(parts) == 0 {
		return ""
	}
	return "ALTER TABLE " + tap.Table.Qualified(q) + " " + strings.Join(parts, ", ")
}
