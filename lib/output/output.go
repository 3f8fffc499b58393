package output

import (
	"fmt"
	"strings"
)

const CommentLinePrefix = "--"

// StatementTerminator follows every rendered statement
const StatementTerminator = ";\n\n"

type ToSql interface {
	ToSql(Quoter) string
}

type SQLComment interface {
	Comment() string
}

func NewRawSQL(format string, args ...interface{}) rawSQL {
	return rawSQL(fmt.Sprintf(format, args...))
}

type rawSQL string

func (c rawSQL) ToSql(q Quoter) string {
	return string(c)
}

type Quoter interface {
	QuoteTable(table string) string
	QuoteColumn(column string) string
	QuoteObject(obj string) string
	QualifyTable(schema, table string) string
}

// Render writes each statement followed by StatementTerminator, including
// statements that render to nothing. Comments are written as comment lines.
func Render(q Quoter, stmts ...ToSql) string {
	b := strings.Builder{}
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}
		if c, isComment := stmt.(SQLComment); isComment {
			for _, line := range strings.Split(c.Comment(), "\n") {
				b.WriteString(strings.TrimSpace(CommentLinePrefix+" "+line) + "\n")
			}
			continue
		}
		b.WriteString(stmt.ToSql(q))
		b.WriteString(StatementTerminator)
	}
	return b.String()
}
