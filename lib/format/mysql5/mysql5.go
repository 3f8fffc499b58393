package mysql5

import (
	"github.com/dbsteward/mysqldiff/lib/config"
	"github.com/dbsteward/mysqldiff/lib/format"
)

var GlobalLookup = &format.Lookup{
	OperationsConstructor: func(c config.Config) format.Operations {
		return NewOperations(c)
	},
}
