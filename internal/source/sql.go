package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/jacksmith/adminui/internal/model"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	sqliteDriver   = "sqlite"
	postgresDriver = "pgx"
	defaultTable   = "users"
)

// identRegex matches plain or schema-qualified SQL identifiers.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// SQLSource reads records from the id, name, email and role columns of a table.
type SQLSource struct {
	driver  string
	dsn     string
	table   string
	orderBy string
	label   string
}

// NewSQLSource returns a source reading table through driver/dsn.
// table and orderBy must be SQL identifiers; orderBy may be empty.
func NewSQLSource(driver, dsn, table, orderBy string) (*SQLSource, error) {
	if table == "" {
		table = defaultTable
	}
	if !identRegex.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if orderBy != "" && !identRegex.MatchString(orderBy) {
		return nil, fmt.Errorf("invalid order column %q", orderBy)
	}
	return &SQLSource{
		driver:  driver,
		dsn:     dsn,
		table:   table,
		orderBy: orderBy,
		label:   driver + ":" + table,
	}, nil
}

func (s *SQLSource) String() string {
	return s.label
}

// Query returns the statement Fetch runs.
func (s *SQLSource) Query() string {
	q := "SELECT id, name, email, role FROM " + s.table
	if s.orderBy != "" {
		q += " ORDER BY " + s.orderBy
	}
	return q
}

// Fetch opens the database, reads every row and closes it again.
func (s *SQLSource) Fetch(ctx context.Context) ([]model.Record, error) {
	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, loadError(s, fmt.Errorf("open %s: %w", s.driver, err))
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, s.Query())
	if err != nil {
		return nil, loadError(s, fmt.Errorf("select records: %w", err))
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var id, name, email, role sql.NullString
		if err := rows.Scan(&id, &name, &email, &role); err != nil {
			return nil, loadError(s, fmt.Errorf("scan: %w", err))
		}
		idx := len(records)
		for _, col := range []struct {
			name string
			v    sql.NullString
		}{{"id", id}, {"name", name}, {"email", email}, {"role", role}} {
			if !col.v.Valid {
				return nil, loadError(s, &model.ShapeError{Index: idx, Field: col.name, Reason: "is null"})
			}
		}
		records = append(records, model.Record{
			ID:    id.String,
			Name:  name.String,
			Email: email.String,
			Role:  role.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, loadError(s, fmt.Errorf("iterate rows: %w", err))
	}
	return records, nil
}

// openSQLite parses sqlite://path?table=T&order=C.
func openSQLite(uri string) (*SQLSource, error) {
	rest := uri[strings.Index(uri, "://")+3:]
	path, rawQuery, _ := strings.Cut(rest, "?")
	if path == "" {
		return nil, fmt.Errorf("invalid sqlite source %q: missing database path", uri)
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("invalid sqlite source %q: %w", uri, err)
	}
	return NewSQLSource(sqliteDriver, path, q.Get("table"), q.Get("order"))
}

// openPostgres strips the table/order parameters and hands the rest of the
// URL to pgx as the DSN.
func openPostgres(u *url.URL) (*SQLSource, error) {
	q := u.Query()
	table, order := q.Get("table"), q.Get("order")
	q.Del("table")
	q.Del("order")
	dsn := *u
	dsn.RawQuery = q.Encode()
	return NewSQLSource(postgresDriver, dsn.String(), table, order)
}
