package live

import (
	"context"
	"fmt"

	"github.com/dbsteward/mysqldiff/lib/format/mysql5/sql"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mock_introspector.go -package=live . Introspector

type IntrospectorFactory interface {
	NewIntrospector(*Connection) (Introspector, error)
}

type LiveIntrospectorFactory struct{}

func (*LiveIntrospectorFactory) NewIntrospector(conn *Connection) (Introspector, error) {
	return NewIntrospector(conn), nil
}

type Introspector interface {
	GetTableList(ctx context.Context) ([]string, error)
	GetCreateTable(ctx context.Context, table string) (string, error)
}

type LiveIntrospector struct {
	conn   *Connection
	quoter *sql.Quoter
}

var _ Introspector = &LiveIntrospector{}

func NewIntrospector(conn *Connection) *LiveIntrospector {
	return &LiveIntrospector{conn, sql.NewQuoter()}
}

// GetTableList returns base tables of the connected database, views are skipped
func (self *LiveIntrospector) GetTableList(ctx context.Context) ([]string, error) {
	return self.conn.QueryStrings(ctx, "SHOW FULL TABLES WHERE Table_type = 'BASE TABLE'")
}

func (self *LiveIntrospector) GetCreateTable(ctx context.Context, table string) (string, error) {
	_, create, err := self.conn.QueryPair(ctx, fmt.Sprintf("SHOW CREATE TABLE %s", self.quoter.QuoteTable(table)))
	if err != nil {
		return "", errors.Wrapf(err, "while fetching definition of table %s", table)
	}
	return create, nil
}
