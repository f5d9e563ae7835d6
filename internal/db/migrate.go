package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS portfolio_meta (
		id          TEXT PRIMARY KEY DEFAULT 'default',
		owner       TEXT NOT NULL DEFAULT '',
		headline    TEXT NOT NULL DEFAULT '',
		about_me    TEXT NOT NULL,
		resume_summary TEXT NOT NULL DEFAULT '',
		resume_url  TEXT NOT NULL DEFAULT '',
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS skills (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS skill_categories (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS skill_catalog (
		category_position INTEGER NOT NULL REFERENCES skill_categories(position) ON DELETE CASCADE,
		position          INTEGER NOT NULL,
		name              TEXT NOT NULL,
		level             TEXT NOT NULL DEFAULT '',
		summary           TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (category_position, position)
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		position     INTEGER PRIMARY KEY,
		name         TEXT NOT NULL,
		title        TEXT NOT NULL,
		technologies TEXT NOT NULL,
		description  TEXT NOT NULL,
		link         TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_name ON projects(lower(name))`,

	`CREATE TABLE IF NOT EXISTS experience (
		position    INTEGER PRIMARY KEY,
		company     TEXT NOT NULL,
		role        TEXT NOT NULL,
		period      TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS education (
		position    INTEGER PRIMARY KEY,
		institution TEXT NOT NULL,
		degree      TEXT NOT NULL,
		period      TEXT NOT NULL DEFAULT '',
		details     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		position INTEGER PRIMARY KEY,
		name     TEXT NOT NULL,
		value    TEXT NOT NULL,
		link     TEXT NOT NULL DEFAULT ''
	)`,

	// Source label records where an import came from (file path or "wizard").
	`ALTER TABLE portfolio_meta ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
}
