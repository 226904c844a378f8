package throwback

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrUnknownDatabase is returned when the requested name has no entry
	// in the configuration's databases section.
	ErrUnknownDatabase = errors.New("unknown database")
	// ErrUnsupportedDriver is returned when the configured driver has no
	// registered dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Database returns a connection for the named entry of the configuration's
// databases section. Connections are created lazily and cached per instance:
// repeated calls with the same name return the same handle. Cached handles
// are released by Close.
func (u *Unit) Database(name string) (*sql.DB, error) {
	if db, ok := u.dbs[name]; ok {
		return db, nil
	}

	if u.cfg == nil || u.cfg.Databases == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}
	opts, ok := u.cfg.Databases[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatabase, name)
	}

	driver, dsn, err := connString(opts)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", name, err)
	}

	if u.dbs == nil {
		u.dbs = make(map[string]*sql.DB)
	}
	u.dbs[name] = db
	return db, nil
}

// connString maps the configured driver to a database/sql driver name and
// its connection string template.
func connString(opts DatabaseOptions) (string, string, error) {
	switch opts.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
			opts.Username, opts.Password, opts.Host, opts.Port, opts.Name)
		return "mysql", dsn, nil
	case "pgsql":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			opts.Username, opts.Password, opts.Host, opts.Port, opts.Name)
		return "pgx", dsn, nil
	case "clickhouse":
		dsn := fmt.Sprintf("clickhouse://%s:%s@%s:%s/%s",
			opts.Username, opts.Password, opts.Host, opts.Port, opts.Name)
		return "clickhouse", dsn, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDriver, opts.Driver)
}
