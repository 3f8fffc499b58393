package sql

import (
	"fmt"

	"github.com/dbsteward/mysqldiff/lib/output"
)

type Comment string

func NewComment(format string, args ...interface{}) Comment {
	return Comment(fmt.Sprintf(format, args...))
}

func (self Comment) Comment() string {
	return string(self)
}

func (self Comment) ToSql(q output.Quoter) string {
	return output.CommentLinePrefix + " " + string(self)
}
