package format

import "github.com/dbsteward/mysqldiff/lib/config"

type Lookup struct {
	OperationsConstructor func(config.Config) Operations
}
