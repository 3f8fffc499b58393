package mysql5

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/dbsteward/mysqldiff/lib/config"
	"github.com/dbsteward/mysqldiff/lib/format/mysql5/live"
	"github.com/dbsteward/mysqldiff/lib/format/mysql5/parse"
	"github.com/dbsteward/mysqldiff/lib/format/mysql5/sql"
	"github.com/dbsteward/mysqldiff/lib/ir"
	"github.com/dbsteward/mysqldiff/lib/output"
)

type Operations struct {
	logger              *slog.Logger
	quoter              *sql.Quoter
	differ              *Diff
	IntrospectorFactory live.IntrospectorFactory
}

func NewOperations(c config.Config) *Operations {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	differ := NewDiff(logger)
	if c.Concurrency > 0 {
		differ.Concurrency = c.Concurrency
	}
	return &Operations{
		logger: logger,
		quoter: &sql.Quoter{
			ShouldQuoteSchemaNames: c.QuoteSchemaNames,
			ShouldQuoteTableNames:  c.QuoteTableNames,
			ShouldQuoteColumnNames: c.QuoteColumnNames,
			ShouldQuoteObjectNames: c.QuoteObjectNames,
		},
		differ:              differ,
		IntrospectorFactory: &live.LiveIntrospectorFactory{},
	}
}

func (ops *Operations) GetQuoter() output.Quoter {
	return ops.quoter
}

func (ops *Operations) LoadSqlFiles(files []string) (*ir.Definition, error) {
	for _, file := range files {
		ops.logger.Info(fmt.Sprintf("Loading sql file %s", file))
	}
	doc, err := parse.FromFiles(files)
	if err != nil {
		return nil, err
	}
	for _, table := range doc.Tables {
		ops.logger.Debug(fmt.Sprintf("Loaded %s", table))
	}
	return doc, nil
}

func (ops *Operations) ExtractSchema(ctx context.Context, host string, port uint, name, user, pass string) (*ir.Definition, error) {
	ops.logger.Info(fmt.Sprintf("Connecting to mysql5 host %s:%d database %s as %s", host, port, name, user))
	conn, err := live.NewConnection(ctx, host, port, name, user, pass)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	defer conn.Disconnect()

	if version, err := conn.Version(ctx); err == nil {
		ops.logger.Info(fmt.Sprintf("Connected to database, server version %s", version))
	}

	introspector, err := ops.IntrospectorFactory.NewIntrospector(conn)
	if err != nil {
		return nil, errors.Wrap(err, "creating introspector")
	}
	doc, err := ops.extractSchema(ctx, introspector)
	if err != nil {
		return nil, errors.Wrapf(err, "extracting schema of %s", name)
	}
	return doc, nil
}

func (ops *Operations) extractSchema(ctx context.Context, introspector live.Introspector) (*ir.Definition, error) {
	tables, err := introspector.GetTableList(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "while listing tables")
	}
	doc := &ir.Definition{}
	for i, name := range tables {
		ops.logger.Info(fmt.Sprintf("Analyze table %s", name))
		create, err := introspector.GetCreateTable(ctx, name)
		if err != nil {
			return nil, err
		}
		table, err := parse.ParseCreateTable(create)
		if err != nil {
			if perr, ok := err.(*parse.Error); ok {
				perr.Statement = i + 1
				perr.Table = name
			}
			return nil, err
		}
		ops.logger.Debug(fmt.Sprintf("Extracted %s", table))
		doc.AddTable(table)
	}
	return doc, nil
}

func (ops *Operations) DiffDefinitions(oldDoc, newDoc *ir.Definition) (*output.Segmenter, error) {
	stmts, err := ops.differ.DiffTables(oldDoc, newDoc)
	if err != nil {
		return nil, err
	}
	ops.logger.Info(fmt.Sprintf("Generated %d upgrade statements", len(stmts)))
	ofs := output.NewSegmenter(ops.quoter)
	if err := ofs.WriteSql(stmts...); err != nil {
		return nil, err
	}
	return ofs, nil
}

// DumpSchema writes every table's declaration, preceded by a generation comment
func (ops *Operations) DumpSchema(doc *ir.Definition) (*output.Segmenter, error) {
	ofs := output.NewSegmenter(ops.quoter)
	err := ofs.SetHeader(sql.NewComment("full database definition file generated %s", time.Now().Format(time.RFC1123Z)))
	if err != nil {
		return nil, err
	}
	for _, table := range doc.Tables {
		err := ofs.WriteSql(&sql.TableCreateRaw{
			Table:      sql.TableRef{Table: table.Name},
			Definition: table.RawDefinition,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "while dumping table %s", table.Name)
		}
	}
	return ofs, nil
}
