package format

import (
	"context"

	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/output"
)

type Operations interface {
	// LoadSqlFiles builds a snapshot from the CREATE TABLE statements in the given files
	LoadSqlFiles(files []string) (*ir.Definition, error)
	// ExtractSchema builds a snapshot from a live database
	ExtractSchema(ctx context.Context, host string, port uint, name, user, pass string) (*ir.Definition, error)
	// DiffDefinitions returns the statements upgrading oldDoc to newDoc
	DiffDefinitions(oldDoc, newDoc *ir.Definition) (*output.Segmenter, error)
	// DumpSchema returns the CREATE TABLE statements of the snapshot
	DumpSchema(doc *ir.Definition) (*output.Segmenter, error)

	GetQuoter() output.Quoter
}
