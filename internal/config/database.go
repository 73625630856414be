package config

import (
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database drivers understood by Open.
const (
	DriverPGX    = "pgx"
	DriverPQ     = "pq"
	DriverSQLite = "sqlite"
)

// Database selects and addresses the relational store.
type Database struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	TimeZone   string
	SQLitePath string
	LogLevel   string
}

// DSN is the Postgres data source name.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

// Dialector picks the gorm dialector for the configured driver.
func (d Database) Dialector() (gorm.Dialector, error) {
	switch d.Driver {
	case DriverPGX, "":
		return postgres.Open(d.DSN()), nil
	case DriverPQ:
		// lib/pq registers itself as "postgres".
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: d.DSN()}), nil
	case DriverSQLite:
		return sqlite.Open(d.SQLitePath), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", d.Driver)
}

// Open connects to the configured database. Driver errors are translated
// to gorm's portable errors where the dialector supports it.
func Open(d Database, l gormlogger.Interface) (*gorm.DB, error) {
	dialector, err := d.Dialector()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: l, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
