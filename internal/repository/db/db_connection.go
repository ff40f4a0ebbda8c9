package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DefaultDSN keeps the whole database in process memory.
const DefaultDSN = "file:temanikan?mode=memory&cache=shared"

// InitDB opens the SQLite database, ensures tables exist and loads the
// catalog seed.
func InitDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	// A single connection keeps an in-memory database alive and serialises writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seedCatalog(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    role TEXT NOT NULL,
    avatar TEXT,
    password_hash TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS activity_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);`,
	`CREATE TABLE IF NOT EXISTS aquarium_controls (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    auto_mode BOOLEAN NOT NULL,
    robot_active BOOLEAN NOT NULL,
    light_intensity INTEGER NOT NULL,
    filter_speed INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS fish (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    scientific_name TEXT NOT NULL,
    category TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    size TEXT NOT NULL,
    temperature TEXT NOT NULL,
    ph TEXT NOT NULL,
    origin TEXT NOT NULL,
    image TEXT NOT NULL,
    description TEXT NOT NULL,
    lifespan TEXT NOT NULL,
    tank_size TEXT NOT NULL,
    compatibility TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS product_categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    count INTEGER NOT NULL,
    icon TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    price INTEGER NOT NULL,
    original_price INTEGER,
    rating REAL NOT NULL,
    reviews INTEGER NOT NULL,
    image TEXT NOT NULL,
    badge TEXT NOT NULL DEFAULT ''
);`,
	`CREATE TABLE IF NOT EXISTS forum_categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    topics INTEGER NOT NULL,
    posts INTEGER NOT NULL,
    color TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS forum_topics (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL,
    replies INTEGER NOT NULL,
    views INTEGER NOT NULL,
    last_reply TEXT NOT NULL,
    avatar TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS guide_categories (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    articles INTEGER NOT NULL,
    color TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS guides (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    category TEXT NOT NULL,
    read_time TEXT NOT NULL,
    author TEXT NOT NULL,
    publish_date TEXT NOT NULL,
    image TEXT NOT NULL,
    likes INTEGER NOT NULL,
    comments INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    image TEXT NOT NULL,
    author TEXT NOT NULL,
    read_time TEXT NOT NULL,
    likes INTEGER NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS devices (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    status TEXT NOT NULL,
    last_update TEXT NOT NULL,
    battery_level INTEGER
);`,
	`CREATE TABLE IF NOT EXISTS cleaning_schedules (
    id INTEGER PRIMARY KEY,
    day TEXT NOT NULL,
    time TEXT NOT NULL,
    type TEXT NOT NULL,
    enabled BOOLEAN NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS admin_users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    role TEXT NOT NULL,
    status TEXT NOT NULL,
    join_date TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS admin_posts (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL,
    status TEXT NOT NULL,
    date TEXT NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS pending_products (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    seller TEXT NOT NULL,
    price INTEGER NOT NULL,
    status TEXT NOT NULL
);`,
}

func ensureSchema(db *sql.DB) error {
	return inTx(db, "schema", schema)
}

func inTx(db *sql.DB, what string, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin %s transaction: %w", what, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply %s statement %d: %w", what, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s transaction: %w", what, err)
	}
	return nil
}
