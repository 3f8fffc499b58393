package mysql5

import (
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/dbsteward/mysqldiff/lib/format/mysql5/sql"
	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/output"
)

// Diff computes the statements that upgrade an old snapshot to a new one.
// Tables only present in the old snapshot are never dropped.
type Diff struct {
	logger *slog.Logger
	// Concurrency is the number of tables diffed at once. Output order does
	// not depend on it.
	Concurrency int
}

func NewDiff(logger *slog.Logger) *Diff {
	if logger == nil {
		logger = slog.Default()
	}
	return &Diff{
		logger:      logger.With(slog.String("operation", "diff")),
		Concurrency: 1,
	}
}

// ExtractDiff diffs two lists of tables with the default configuration and
// renders the result.
func ExtractDiff(oldTables, newTables []*ir.Table) (string, error) {
	return NewDiff(nil).DiffDoc(
		sql.NewQuoter(),
		&ir.Definition{Tables: oldTables},
		&ir.Definition{Tables: newTables},
	)
}

// DiffDoc renders the upgrade statements; two identical snapshots render to the empty string
func (d *Diff) DiffDoc(q output.Quoter, oldDoc, newDoc *ir.Definition) (string, error) {
	stmts, err := d.DiffTables(oldDoc, newDoc)
	if err != nil {
		return "", err
	}
	return output.Render(q, stmts...), nil
}

// DiffTables returns one statement per new table name that needs one, in
// lexicographic table name order: the table's own CREATE TABLE if it is not
// present in oldDoc, otherwise a single ALTER TABLE.
func (d *Diff) DiffTables(oldDoc, newDoc *ir.Definition) ([]output.ToSql, error) {
	if err := validateDefinitions(oldDoc, newDoc); err != nil {
		return nil, err
	}

	names := newDoc.TableNames()
	slices.Sort(names)

	// each table writes only its own slot, so the result order is fixed up front
	results := make([]output.ToSql, len(names))
	g := errgroup.Group{}
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = d.diffTableNamed(oldDoc, newDoc, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]output.ToSql, 0, len(results))
	for _, stmt := range results {
		if stmt != nil {
			out = append(out, stmt)
		}
	}
	return out, nil
}

func (d *Diff) diffTableNamed(oldDoc, newDoc *ir.Definition, name string) output.ToSql {
	newTable := newDoc.TryGetTableNamed(name)
	oldTable := oldDoc.TryGetTableNamed(name)
	if oldTable == nil {
		d.logger.Debug("creating new table", slog.String("table", name))
		return &sql.TableCreateRaw{
			Table:      sql.TableRef{Table: name},
			Definition: newTable.RawDefinition,
		}
	}
	return d.diffTable(oldTable, newTable)
}

// diffTable returns nil when the two tables are equivalent
func (d *Diff) diffTable(oldTable, newTable *ir.Table) output.ToSql {
	parts := diffColumns(oldTable, newTable)
	parts = append(parts, diffKeys(oldTable, newTable, ir.KeyKindOrdinary)...)
	parts = append(parts, diffKeys(oldTable, newTable, ir.KeyKindUnique)...)
	if len(parts) == 0 {
		d.logger.Debug("table unchanged", slog.String("table", newTable.Name))
		return nil
	}
	d.logger.Debug("altering table", slog.String("table", newTable.Name), slog.Int("changes", len(parts)))
	return sql.NewTableAlter(sql.TableRef{Table: newTable.Name}, parts...)
}

func validateDefinitions(oldDoc, newDoc *ir.Definition) error {
	var result *multierror.Error
	for _, err := range oldDoc.Validate() {
		result = multierror.Append(result, errors.Wrap(err, "old schema"))
	}
	for _, err := range newDoc.Validate() {
		result = multierror.Append(result, errors.Wrap(err, "new schema"))
	}
	return result.ErrorOrNil()
}
