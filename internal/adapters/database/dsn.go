package database

import (
	"fmt"
	"net"
	"net/url"
	"sort"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/college-predictor/internal/platform/config"
)

// database/sql driver names for each configured driver.
const (
	driverNameMySQL    = "mysql"
	driverNamePostgres = "pgx"
	driverNameSQLite   = "sqlite"
)

func init() {
	// sqlx only knows "sqlite3" out of the box; modernc registers "sqlite".
	sqlx.BindDriver(driverNameSQLite, sqlx.QUESTION)
}

// DataSource returns the database/sql driver name and DSN for cfg.
func DataSource(cfg *config.DatabaseConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return driverNameMySQL, mysqlDSN(cfg), nil
	case config.DriverPostgres:
		return driverNamePostgres, postgresDSN(cfg), nil
	case config.DriverSQLite:
		return driverNameSQLite, sqliteDSN(cfg), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func mysqlDSN(cfg *config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN()
}

func postgresDSN(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: encodeParams(cfg.Params),
	}
	return u.String()
}

func sqliteDSN(cfg *config.DatabaseConfig) string {
	if q := encodeParams(cfg.Params); q != "" {
		return "file:" + cfg.Path + "?" + q
	}
	return cfg.Path
}

// encodeParams renders params as a query string with stable key order.
func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Set(k, params[k])
	}
	return values.Encode()
}
