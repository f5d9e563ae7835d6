package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/devterm/internal/db"
)

// queryRows runs query and calls scan once per row.
func queryRows(ctx context.Context, conn db.DBTX, query string, scan func(*sql.Rows) error, args ...any) error {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
