package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	sqliteDriverName = "sqlite"
	mysqlDriverName  = "mysql"
)

// InitDB opens the database for driver ("sqlite" or "mysql") and ensures
// tables exist.
func InitDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case sqliteDriverName:
		return initSQLite(dsn)
	case mysqlDriverName:
		return initMySQL(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// initSQLite opens/creates a SQLite DB file.
func initSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite is not great with many writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func initMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open(mysqlDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	if err := ensureSchema(db, mysqlSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS knowledge_base (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    keywords TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'default',
    is_suggested BOOLEAN NOT NULL DEFAULT 0,
    sort_order INTEGER NOT NULL DEFAULT 0,
    is_active BOOLEAN NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS rooms (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    floor TEXT NOT NULL,
    name TEXT NOT NULL,
    UNIQUE (floor, name)
);`, `
CREATE TABLE IF NOT EXISTS room_statistics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    room_id INTEGER NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
    date DATE NOT NULL,
    door_hours REAL NOT NULL DEFAULT 0,
    occupied_hours REAL NOT NULL DEFAULT 0,
    ac_hours REAL NOT NULL DEFAULT 0,
    light_hours REAL NOT NULL DEFAULT 0,
    energy REAL NOT NULL DEFAULT 0,
    power REAL NOT NULL DEFAULT 0,
    UNIQUE (room_id, date)
);`,
}

var mysqlSchema = []string{`
CREATE TABLE IF NOT EXISTS users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(128) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS knowledge_base (
    id INT AUTO_INCREMENT PRIMARY KEY,
    question VARCHAR(512) NOT NULL,
    answer TEXT NOT NULL,
    keywords VARCHAR(512) NOT NULL DEFAULT '',
    category VARCHAR(64) NOT NULL DEFAULT 'default',
    is_suggested TINYINT(1) NOT NULL DEFAULT 0,
    sort_order INT NOT NULL DEFAULT 0,
    is_active TINYINT(1) NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS rooms (
    id INT AUTO_INCREMENT PRIMARY KEY,
    floor VARCHAR(32) NOT NULL,
    name VARCHAR(64) NOT NULL,
    UNIQUE KEY uniq_floor_name (floor, name)
);`, `
CREATE TABLE IF NOT EXISTS room_statistics (
    id INT AUTO_INCREMENT PRIMARY KEY,
    room_id INT NOT NULL,
    date DATE NOT NULL,
    door_hours DOUBLE NOT NULL DEFAULT 0,
    occupied_hours DOUBLE NOT NULL DEFAULT 0,
    ac_hours DOUBLE NOT NULL DEFAULT 0,
    light_hours DOUBLE NOT NULL DEFAULT 0,
    energy DOUBLE NOT NULL DEFAULT 0,
    power DOUBLE NOT NULL DEFAULT 0,
    UNIQUE KEY uniq_room_date (room_id, date),
    CONSTRAINT fk_stats_room FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE
);`,
}

func ensureSchema(db *sql.DB, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
