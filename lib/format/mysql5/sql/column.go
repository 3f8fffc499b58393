package sql

import (
	"fmt"

	"github.com/dbsteward/mysqldiff/lib/output"
)

type TableAlterPartColumnAdd struct {
	Column     string
	Definition string
}

func (self *TableAlterPartColumnAdd) GetAlterPartSql(q output.Quoter) string {
	return fmt.Sprintf("ADD %s %s", q.QuoteColumn(self.Column), self.Definition)
}

type TableAlterPartColumnDrop struct {
	Column string
}

func (self *TableAlterPartColumnDrop) GetAlterPartSql(q output.Quoter) string {
	return fmt.Sprintf("DROP %s", q.QuoteColumn(self.Column))
}

type TableAlterPartColumnModify struct {
	Column     string
	Definition string
}

func (self *TableAlterPartColumnModify) GetAlterPartSql(q output.Quoter) string {
	return fmt.Sprintf("MODIFY %s %s", q.QuoteColumn(self.Column), self.Definition)
}
