package sql

import (
	"fmt"
	"strings"
)

// Quoter quotes mysql identifiers with backticks. Names are emitted bare
// when quoting for their kind is turned off.
type Quoter struct {
	ShouldQuoteSchemaNames bool
	ShouldQuoteTableNames  bool
	ShouldQuoteColumnNames bool
	ShouldQuoteObjectNames bool
}

// NewQuoter returns a quoter that quotes every identifier, which is what
// SHOW CREATE TABLE does
func NewQuoter() *Quoter {
	return &Quoter{
		ShouldQuoteSchemaNames: true,
		ShouldQuoteTableNames:  true,
		ShouldQuoteColumnNames: true,
		ShouldQuoteObjectNames: true,
	}
}

func (self *Quoter) getQuotedName(name string, shouldQuote bool) string {
	if shouldQuote {
		return fmt.Sprintf("`%s`", strings.ReplaceAll(name, "`", "``"))
	}
	return name
}

func (self *Quoter) QuoteSchema(name string) string {
	return self.getQuotedName(name, self.ShouldQuoteSchemaNames)
}

func (self *Quoter) QuoteTable(name string) string {
	return self.getQuotedName(name, self.ShouldQuoteTableNames)
}

func (self *Quoter) QuoteColumn(name string) string {
	return self.getQuotedName(name, self.ShouldQuoteColumnNames)
}

func (self *Quoter) QuoteObject(name string) string {
	return self.getQuotedName(name, self.ShouldQuoteObjectNames)
}

func (self *Quoter) QualifyTable(schema string, table string) string {
	if schema == "" {
		return self.QuoteTable(table)
	}
	return fmt.Sprintf("%s.%s", self.QuoteSchema(schema), self.QuoteTable(table))
}
