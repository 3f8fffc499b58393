package sql

import (
	"github.com/dbsteward/mysqldiff/lib/output"
)

type Quotable interface {
	Quoted(q output.Quoter) string
}

// DoNotQuote is text that is emitted exactly as given, e.g. a key's column list
type DoNotQuote struct {
	Text string
}

func (self *DoNotQuote) Quoted(q output.Quoter) string {
	return self.Text
}

type TableRef struct {
	Schema string
	Table  string
}

func (self *TableRef) Qualified(q output.Quoter) string {
	return q.QualifyTable(self.Schema, self.Table)
}
