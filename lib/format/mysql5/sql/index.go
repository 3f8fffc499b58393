package sql

import (
	"fmt"

	"github.com/dbsteward/mysqldiff/lib/output"
	"github.com/dbsteward/mysqldiff/lib/util"
)

type TableAlterPartIndexAdd struct {
	Index   string
	Unique  bool
	Columns Quotable
}

func (self *TableAlterPartIndexAdd) GetAlterPartSql(q output.Quoter) string {
	return fmt.Sprintf(
		"ADD %sINDEX %s (%s)",
		util.MaybeStr(self.Unique, "UNIQUE "),
		q.QuoteObject(self.Index),
		self.Columns.Quoted(q),
	)
}

type TableAlterPartIndexDrop struct {
	Index string
}

func (self *TableAlterPartIndexDrop) GetAlterPartSql(q output.Quoter) string {
	return fmt.Sprintf("DROP INDEX %s", q.QuoteObject(self.Index))
}
