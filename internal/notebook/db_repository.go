package notebook

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// DBRepository persists the notebook in MySQL with the same whole-snapshot
// semantics as the file repository: Save replaces the entries and
// entry_examples tables inside one transaction, preserving order through a
// position column.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

type entryRow struct {
	ID         string `db:"id"`
	Term       string `db:"term"`
	Phonetic   string `db:"phonetic"`
	Definition string `db:"definition"`
	UsageNote  string `db:"usage_note"`
	ImageURL   string `db:"image_url"`
	NativeLang string `db:"native_lang"`
	TargetLang string `db:"target_lang"`
	CreatedAt  int64  `db:"created_at"`
	Position   int    `db:"position"`
}

type exampleRow struct {
	EntryID  string `db:"entry_id"`
	Position int    `db:"position"`
	Target   string `db:"target"`
	Native   string `db:"native"`
}

// Load reads the full snapshot ordered by position.
func (r *DBRepository) Load() ([]entry.Entry, error) {
	var rows []entryRow
	if err := r.db.Select(&rows, "SELECT * FROM entries ORDER BY position"); err != nil {
		return nil, fmt.Errorf("db.Select(entries) > %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	entryIDs := make([]string, len(rows))
	for i, row := range rows {
		entryIDs[i] = row.ID
	}

	query, args, err := sqlx.In("SELECT * FROM entry_examples WHERE entry_id IN (?) ORDER BY position", entryIDs)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(entry_examples) > %w", err)
	}
	var examples []exampleRow
	if err := r.db.Select(&examples, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.Select(entry_examples) > %w", err)
	}
	examplesByEntry := make(map[string][]entry.Example, len(rows))
	for _, example := range examples {
		examplesByEntry[example.EntryID] = append(examplesByEntry[example.EntryID], entry.Example{
			Target: example.Target,
			Native: example.Native,
		})
	}

	entries := make([]entry.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entry.Entry{
			ID:         row.ID,
			Term:       row.Term,
			Phonetic:   row.Phonetic,
			Definition: row.Definition,
			Examples:   examplesByEntry[row.ID],
			UsageNote:  row.UsageNote,
			ImageURL:   row.ImageURL,
			NativeLang: row.NativeLang,
			TargetLang: row.TargetLang,
			CreatedAt:  row.CreatedAt,
		})
	}
	return entries, nil
}

// Save replaces the stored snapshot with the given collection.
func (r *DBRepository) Save(entries []entry.Entry) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("db.Beginx() > %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entry_examples"); err != nil {
		return fmt.Errorf("tx.Exec(delete entry_examples) > %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("tx.Exec(delete entries) > %w", err)
	}

	for position, e := range entries {
		_, err := tx.Exec(
			"INSERT INTO entries (id, term, phonetic, definition, usage_note, image_url, native_lang, target_lang, created_at, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			e.ID, e.Term, e.Phonetic, e.Definition, e.UsageNote, e.ImageURL, e.NativeLang, e.TargetLang, e.CreatedAt, position)
		if err != nil {
			return fmt.Errorf("tx.Exec(insert entry) > %w", err)
		}
		for examplePosition, example := range e.Examples {
			_, err := tx.Exec(
				"INSERT INTO entry_examples (entry_id, position, target, native) VALUES (?, ?, ?, ?)",
				e.ID, examplePosition, example.Target, example.Native)
			if err != nil {
				return fmt.Errorf("tx.Exec(insert entry_example) > %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
