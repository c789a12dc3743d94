package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

const schemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS habits (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	question    TEXT NOT NULL DEFAULT '',
	color       TEXT NOT NULL DEFAULT '',
	position    INTEGER NOT NULL,
	archived    INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS repetitions (
	habit_id    TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	day         INTEGER NOT NULL,
	value       INTEGER NOT NULL DEFAULT 2,
	PRIMARY KEY (habit_id, day)
);

CREATE INDEX IF NOT EXISTS idx_repetitions_day ON repetitions(day);
`

// SQLiteStore is the sqlite-backed implementation of HabitStore
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and brings the
// schema up to date. Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaV1); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	// Stamp the schema version on a fresh database
	var version int
	err = db.QueryRow(`SELECT version FROM schema_meta LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		if _, err := db.Exec(`INSERT INTO schema_meta (version) VALUES (?)`, schemaVersion); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to stamp schema version: %w", err)
		}
	} else if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	} else if version > schemaVersion {
		db.Close()
		return nil, fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(includeArchived bool) ([]*domain.Habit, error) {
	query := `SELECT id, name, question, color, position, archived, created_at
	          FROM habits`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY position`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		var h domain.Habit
		var archived int
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.Question, &h.Color, &h.Position, &archived, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		h.Archived = archived != 0
		h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		habits = append(habits, &h)
	}
	return habits, rows.Err()
}

func (s *SQLiteStore) Create(habit *domain.Habit) error {
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO habits (id, name, question, color, position, archived, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Question, habit.Color, habit.Position,
		boolToInt(habit.Archived), habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Update(habit *domain.Habit) error {
	res, err := s.db.Exec(
		`UPDATE habits SET name = ?, question = ?, color = ?, position = ?, archived = ?
		 WHERE id = ?`,
		habit.Name, habit.Question, habit.Color, habit.Position,
		boolToInt(habit.Archived), habit.ID)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Reorder(ids []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin reorder: %w", err)
	}
	defer tx.Rollback()

	for position, id := range ids {
		if _, err := tx.Exec(`UPDATE habits SET position = ? WHERE id = ?`, position, id); err != nil {
			return fmt.Errorf("failed to reposition habit: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ToggleRepetition(habitID string, day domain.Timestamp) (int, error) {
	var value int
	err := s.db.QueryRow(
		`SELECT value FROM repetitions WHERE habit_id = ? AND day = ?`,
		habitID, int64(day)).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec(
			`INSERT INTO repetitions (habit_id, day, value) VALUES (?, ?, ?)`,
			habitID, int64(day), domain.CheckedExplicitly)
		if err != nil {
			return 0, fmt.Errorf("failed to insert repetition: %w", err)
		}
		return domain.CheckedExplicitly, nil
	case err != nil:
		return 0, fmt.Errorf("failed to read repetition: %w", err)
	default:
		_, err = s.db.Exec(
			`DELETE FROM repetitions WHERE habit_id = ? AND day = ?`,
			habitID, int64(day))
		if err != nil {
			return 0, fmt.Errorf("failed to delete repetition: %w", err)
		}
		return domain.Unchecked, nil
	}
}

func (s *SQLiteStore) SetRepetition(habitID string, day domain.Timestamp, value int) error {
	if value == domain.Unchecked {
		_, err := s.db.Exec(
			`DELETE FROM repetitions WHERE habit_id = ? AND day = ?`,
			habitID, int64(day))
		if err != nil {
			return fmt.Errorf("failed to clear repetition: %w", err)
		}
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO repetitions (habit_id, day, value) VALUES (?, ?, ?)
		 ON CONFLICT (habit_id, day) DO UPDATE SET value = excluded.value`,
		habitID, int64(day), value)
	if err != nil {
		return fmt.Errorf("failed to set repetition: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Repetitions(habitID string, from, to domain.Timestamp) ([]domain.Repetition, error) {
	rows, err := s.db.Query(
		`SELECT day, value FROM repetitions
		 WHERE habit_id = ? AND day BETWEEN ? AND ?
		 ORDER BY day`,
		habitID, int64(from), int64(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list repetitions: %w", err)
	}
	defer rows.Close()

	var reps []domain.Repetition
	for rows.Next() {
		var day int64
		var value int
		if err := rows.Scan(&day, &value); err != nil {
			return nil, fmt.Errorf("failed to scan repetition: %w", err)
		}
		reps = append(reps, domain.Repetition{
			HabitID: habitID,
			Day:     domain.Timestamp(day),
			Value:   value,
		})
	}
	return reps, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
