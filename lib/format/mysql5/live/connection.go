package live

import (
	"context"
	"database/sql"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

type Connection struct {
	db *sql.DB
}

// DSN builds the go-sql-driver data source name for a tcp connection
func DSN(host string, port uint, name, user, pass string) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
	cfg.DBName = name
	cfg.User = user
	cfg.Passwd = pass
	return cfg.FormatDSN()
}

func NewConnection(ctx context.Context, host string, port uint, name, user, pass string) (*Connection, error) {
	db, err := sql.Open("mysql", DSN(host, port, name, user, pass))
	if err != nil {
		return nil, errors.Wrap(err, "could not open mysql database")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "could not connect to mysql database %s on %s", name, host)
	}
	return &Connection{db}, nil
}

func (self *Connection) Disconnect() error {
	return self.db.Close()
}

func (self *Connection) Version(ctx context.Context) (string, error) {
	var v string
	err := self.db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&v)
	return v, errors.Wrap(err, "while querying server version")
}

// QueryStrings returns the first column of every row
func (self *Connection) QueryStrings(ctx context.Context, query string, params ...interface{}) ([]string, error) {
	rows, err := self.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "while reading columns")
	}
	out := []string{}
	dests := make([]interface{}, len(cols))
	for i := range dests {
		dests[i] = &sql.RawBytes{}
	}
	for rows.Next() {
		if err := rows.Scan(dests...); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, string(*dests[0].(*sql.RawBytes)))
	}
	return out, errors.Wrap(rows.Err(), "while iterating results")
}

// QueryPair scans the first row of a two column result
func (self *Connection) QueryPair(ctx context.Context, query string, params ...interface{}) (string, string, error) {
	var a, b string
	err := self.db.QueryRowContext(ctx, query, params...).Scan(&a, &b)
	if err != nil {
		return "", "", errors.Wrap(err, "while running query")
	}
	return a, b, nil
}
