package sqldb

import (
	"errors"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Store reads quiz content from a relational database. Production runs
// against hosted Postgres; local development and tests use SQLite. The same
// query text serves both drivers via sqlx.Rebind.
type Store struct {
	db *sqlx.DB
}

// Open connects with the given driver and DSN. For SQLite the store also
// owns schema creation; the hosted Postgres schema is managed externally.
func Open(driver, dsn string) (*Store, error) {
	driver = strings.TrimSpace(driver)
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, errors.New("unsupported database driver: " + driver)
	}
	if strings.TrimSpace(dsn) == "" {
		if driver == DriverPostgres {
			return nil, errors.New("database url is required for postgres")
		}
		dsn = "quiz.db"
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}

	if driver == DriverSQLite {
		// SQLite allows a single writer; keep one connection so the importer
		// and the serving reads do not trip over SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
			_ = db.Close()
			return nil, err
		}
		if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := store.initSchema(); err != nil {
			_ = db.Close()
			return nil, err
		}
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}

	return store, nil
}

// OpenFromEnv connects using DATABASE_DRIVER (postgres|sqlite3, default
// sqlite3) with the DSN from DATABASE_URL for postgres or DATABASE_PATH for
// sqlite.
func OpenFromEnv() (*Store, error) {
	driver := os.Getenv("DATABASE_DRIVER")
	dsn := os.Getenv("DATABASE_PATH")
	if strings.TrimSpace(driver) == DriverPostgres {
		dsn = os.Getenv("DATABASE_URL")
	}
	return Open(driver, dsn)
}

func (s *Store) Close() error {
	return s.db.Close()
}
