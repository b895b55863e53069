package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// pure Go SQLite engine, registered as "sqlite"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps both GORM and sql.DB. The database lives in process memory and is
// gone once the last connection closes.
type DB struct {
	*sql.DB
	GORM *gorm.DB
	name string
}

// DSN returns the shared-cache in-memory DSN for a database name
func DSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)
}

// NewDB opens the in-memory database, applies the embedded migrations and
// returns a GORM handle over the same connection.
func NewDB(name string, verbose bool) (*DB, error) {
	if name == "" {
		return nil, errors.New("database name is empty")
	}

	sqlDB, err := sql.Open("sqlite", DSN(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps every query on the same in-memory database
	// and serializes writers.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(sqlDB, name); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		Conn:       sqlDB,
	}), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	log.Info().Str("database", name).Msg("in-memory database ready")
	return &DB{DB: sqlDB, GORM: gormDB, name: name}, nil
}

// Name returns the in-memory database name
func (db *DB) Name() string {
	return db.name
}

func (db *DB) Close() error {
	log.Info().Str("database", db.name).Msg("closing database connection")
	return db.DB.Close()
}

func runMigrations(sqlDB *sql.DB, name string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{DatabaseName: name})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// m.Close is not called: it would close sqlDB, which the caller keeps.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration UP failed: %w", err)
	}

	version, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	log.Debug().Uint("version", version).Msg("migrations applied")
	return nil
}
