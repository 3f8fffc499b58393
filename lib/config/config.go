package config

import (
	"log/slog"
)

// Config is a structure containing all configuration information
// for any execution of code.
type Config struct {
	Logger           *slog.Logger
	QuoteSchemaNames bool
	QuoteTableNames  bool
	QuoteColumnNames bool
	QuoteObjectNames bool
	Concurrency      int
	OutputFile       string
}

// Default quotes every identifier and diffs sequentially
func Default(logger *slog.Logger) Config {
	return Config{
		Logger:           logger,
		QuoteSchemaNames: true,
		QuoteTableNames:  true,
		QuoteColumnNames: true,
		QuoteObjectNames: true,
		Concurrency:      1,
	}
}
