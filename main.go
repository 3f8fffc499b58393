package main

import (
	"github.com/dbsteward/mysqldiff/lib"
	"github.com/dbsteward/mysqldiff/lib/format/mysql5"
)

func main() {
	diff := lib.NewMySQLDiff(mysql5.GlobalLookup)
	diff.ArgParse()
	diff.Notice("Done")
}
