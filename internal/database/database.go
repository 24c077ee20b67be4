package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		weight TEXT,
		height TEXT,
		goal TEXT,
		avatar TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS progress (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL,
		date TEXT,
		weight TEXT,
		note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		level TEXT,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS recipes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		calories INTEGER,
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS blog (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT,
		body TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Seed inserts starter reference content (workout plans, recipes, blog posts)
// when the tables are empty, so listings render on a fresh install. User data
// is never seeded.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	const sqlStmt = `
	INSERT INTO workouts (title, level, description) VALUES
		('Full Body Beginner', 'Beginner', 'Three weekly sessions of squats, push-ups, rows and planks.'),
		('Push Pull Legs', 'Intermediate', 'Six-day split alternating pushing, pulling and leg movements.'),
		('5x5 Strength', 'Advanced', 'Heavy compound lifts, five sets of five, three times a week.');

	INSERT INTO recipes (title, calories, description) VALUES
		('Overnight Oats', 420, 'Rolled oats soaked in milk with berries and chia seeds.'),
		('Chicken Rice Bowl', 650, 'Grilled chicken breast, jasmine rice, broccoli and teriyaki glaze.'),
		('Greek Salad', 380, 'Tomato, cucumber, feta, olives and olive oil.');

	INSERT INTO blog (title, author, body) VALUES
		('Why Consistency Beats Intensity', 'FitZone Team', 'Showing up three times a week for a year outperforms any two-week blitz.'),
		('Protein 101', 'FitZone Team', 'How much protein you actually need and where to get it.'),
		('Tracking Progress Without Obsessing', 'FitZone Team', 'Weigh-ins are data points, not verdicts. Zoom out.');
	`
	_, err := db.Exec(sqlStmt)
	return err
}
