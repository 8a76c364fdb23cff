package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// ApplyMigrations runs every .sql file of the migration filesystem in file
// name order. Files hold one or more statements separated by semicolons; the
// statements are idempotent (CREATE TABLE IF NOT EXISTS), so re-running is
// safe.
func ApplyMigrations(ctx context.Context, db *sqlx.DB, migrations fs.FS) error {
	files, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("fs.ReadDir(migrations) > %w", err)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}
		contents, err := fs.ReadFile(migrations, "migrations/"+file.Name())
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", file.Name(), err)
		}
		for _, statement := range splitStatements(string(contents)) {
			if _, err := db.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("db.ExecContext(%s) > %w", file.Name(), err)
			}
		}
	}
	return nil
}

func splitStatements(contents string) []string {
	statements := make([]string, 0, 2)
	for _, statement := range strings.Split(contents, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}
