package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/devterm/internal/db"
	"github.com/alexanderramin/devterm/internal/portfolio"
)

// SQLitePortfolioRepo implements PortfolioRepo on the tables created by
// db.Migrate. Replace is atomic; readers see either the old or the new
// snapshot.
type SQLitePortfolioRepo struct {
	db    db.DBTX
	uow   db.UnitOfWork
	clock func() time.Time
}

// NewSQLitePortfolioRepo creates a repo over database.
func NewSQLitePortfolioRepo(database *sql.DB) *SQLitePortfolioRepo {
	return &SQLitePortfolioRepo{
		db:    database,
		uow:   db.NewSQLiteUnitOfWork(database),
		clock: time.Now,
	}
}

// NewSQLitePortfolioRepoWithUoW lets tests inject a failing UnitOfWork.
func NewSQLitePortfolioRepoWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLitePortfolioRepo {
	return &SQLitePortfolioRepo{db: conn, uow: uow, clock: time.Now}
}

var _ PortfolioRepo = (*SQLitePortfolioRepo)(nil)

// Replace deletes the stored snapshot and writes snap in its place.
func (r *SQLitePortfolioRepo) Replace(ctx context.Context, snap *portfolio.Snapshot, source string) error {
	if errs := portfolio.Validate(snap); len(errs) > 0 {
		return fmt.Errorf("invalid portfolio: %w", errors.Join(errs...))
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, table := range []string{"skill_catalog", "skill_categories", "skills", "projects", "experience", "education", "contacts", "portfolio_meta"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO portfolio_meta (id, owner, headline, about_me, resume_summary, resume_url, imported_at, source)
			 VALUES ('default', ?, ?, ?, ?, ?, ?, ?)`,
			snap.Owner, snap.Headline, snap.AboutMe, snap.Resume.Summary, snap.Resume.URL,
			r.clock().UTC().Format(time.RFC3339), source,
		); err != nil {
			return fmt.Errorf("inserting portfolio meta: %w", err)
		}

		for i, name := range snap.Skills {
			if _, err := tx.ExecContext(ctx, `INSERT INTO skills (position, name) VALUES (?, ?)`, i, name); err != nil {
				return fmt.Errorf("inserting skill %q: %w", name, err)
			}
		}
		for i, cat := range snap.SkillCatalog {
			if _, err := tx.ExecContext(ctx, `INSERT INTO skill_categories (position, name) VALUES (?, ?)`, i, cat.Name); err != nil {
				return fmt.Errorf("inserting skill category %q: %w", cat.Name, err)
			}
			for j, sk := range cat.Skills {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO skill_catalog (category_position, position, name, level, summary) VALUES (?, ?, ?, ?, ?)`,
					i, j, sk.Name, sk.Level, sk.Summary,
				); err != nil {
					return fmt.Errorf("inserting skill %q: %w", sk.Name, err)
				}
			}
		}
		for i, p := range snap.Projects {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO projects (position, name, title, technologies, description, link) VALUES (?, ?, ?, ?, ?, ?)`,
				i, p.Name, p.Title, p.Technologies, p.Description, p.Link,
			); err != nil {
				return fmt.Errorf("inserting project %q: %w", p.Name, err)
			}
		}
		for i, e := range snap.Experience {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO experience (position, company, role, period, description) VALUES (?, ?, ?, ?, ?)`,
				i, e.Company, e.Role, e.Period, e.Description,
			); err != nil {
				return fmt.Errorf("inserting experience %q: %w", e.Company, err)
			}
		}
		for i, e := range snap.Education {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO education (position, institution, degree, period, details) VALUES (?, ?, ?, ?, ?)`,
				i, e.Institution, e.Degree, e.Period, e.Details,
			); err != nil {
				return fmt.Errorf("inserting education %q: %w", e.Institution, err)
			}
		}
		for i, c := range snap.Contact {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO contacts (position, name, value, link) VALUES (?, ?, ?, ?)`,
				i, c.Name, c.Value, c.Link,
			); err != nil {
				return fmt.Errorf("inserting contact %q: %w", c.Name, err)
			}
		}
		return nil
	})
}

// ImportedAt reports when and from where the stored snapshot was imported.
func (r *SQLitePortfolioRepo) ImportedAt(ctx context.Context) (time.Time, string, error) {
	var raw, source string
	err := r.db.QueryRowContext(ctx, `SELECT imported_at, source FROM portfolio_meta WHERE id = 'default'`).Scan(&raw, &source)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, "", ErrNotFound
		}
		return time.Time{}, "", fmt.Errorf("reading import metadata: %w", err)
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parsing imported_at %q: %w", raw, err)
	}
	return at, source, nil
}

// Snapshot loads the stored portfolio in original order.
func (r *SQLitePortfolioRepo) Snapshot(ctx context.Context) (*portfolio.Snapshot, error) {
	var snap portfolio.Snapshot
	err := r.db.QueryRowContext(ctx,
		`SELECT owner, headline, about_me, resume_summary, resume_url FROM portfolio_meta WHERE id = 'default'`,
	).Scan(&snap.Owner, &snap.Headline, &snap.AboutMe, &snap.Resume.Summary, &snap.Resume.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning portfolio meta: %w", err)
	}

	if err := r.loadSkills(ctx, &snap); err != nil {
		return nil, err
	}
	if err := r.loadCatalog(ctx, &snap); err != nil {
		return nil, err
	}
	if err := queryRows(ctx, r.db, `SELECT name, title, technologies, description, link FROM projects ORDER BY position`,
		func(rows *sql.Rows) error {
			var p portfolio.Project
			if err := rows.Scan(&p.Name, &p.Title, &p.Technologies, &p.Description, &p.Link); err != nil {
				return err
			}
			snap.Projects = append(snap.Projects, p)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	if err := queryRows(ctx, r.db, `SELECT company, role, period, description FROM experience ORDER BY position`,
		func(rows *sql.Rows) error {
			var e portfolio.Experience
			if err := rows.Scan(&e.Company, &e.Role, &e.Period, &e.Description); err != nil {
				return err
			}
			snap.Experience = append(snap.Experience, e)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("loading experience: %w", err)
	}
	if err := queryRows(ctx, r.db, `SELECT institution, degree, period, details FROM education ORDER BY position`,
		func(rows *sql.Rows) error {
			var e portfolio.Education
			if err := rows.Scan(&e.Institution, &e.Degree, &e.Period, &e.Details); err != nil {
				return err
			}
			snap.Education = append(snap.Education, e)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("loading education: %w", err)
	}
	if err := queryRows(ctx, r.db, `SELECT name, value, link FROM contacts ORDER BY position`,
		func(rows *sql.Rows) error {
			var c portfolio.Contact
			if err := rows.Scan(&c.Name, &c.Value, &c.Link); err != nil {
				return err
			}
			snap.Contact = append(snap.Contact, c)
			return nil
		}); err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}

	return &snap, nil
}

func (r *SQLitePortfolioRepo) loadSkills(ctx context.Context, snap *portfolio.Snapshot) error {
	err := queryRows(ctx, r.db, `SELECT name FROM skills ORDER BY position`, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		snap.Skills = append(snap.Skills, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) loadCatalog(ctx context.Context, snap *portfolio.Snapshot) error {
	err := queryRows(ctx, r.db, `SELECT name FROM skill_categories ORDER BY position`, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		snap.SkillCatalog = append(snap.SkillCatalog, portfolio.SkillCategory{Name: name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("loading skill categories: %w", err)
	}

	err = queryRows(ctx, r.db,
		`SELECT category_position, name, level, summary FROM skill_catalog ORDER BY category_position, position`,
		func(rows *sql.Rows) error {
			var pos int
			var sk portfolio.Skill
			if err := rows.Scan(&pos, &sk.Name, &sk.Level, &sk.Summary); err != nil {
				return err
			}
			if pos < 0 || pos >= len(snap.SkillCatalog) {
				return fmt.Errorf("skill %q references missing category %d", sk.Name, pos)
			}
			snap.SkillCatalog[pos].Skills = append(snap.SkillCatalog[pos].Skills, sk)
			return nil
		})
	if err != nil {
		return fmt.Errorf("loading skill catalog: %w", err)
	}
	return nil
}
