package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timecli/internal/modules/session/domain"
	sessionout "timecli/internal/modules/session/port/out"
	apperrors "timecli/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// timeLayout is the stored timestamp format. Everything is persisted in UTC
// so the strings compare correctly as text; reads convert back to local.
const timeLayout = "2006-01-02T15:04:05Z"

type SQLiteSessionStore struct {
	db *sql.DB
}

// NewSQLiteSessionStore wires the ledger onto an open database handle. The
// caller owns the handle's lifecycle.
func NewSQLiteSessionStore(db *sql.DB) (*SQLiteSessionStore, error) {
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  start_time TEXT NOT NULL,
  end_time TEXT,
  duration_sec INTEGER
);
CREATE UNIQUE INDEX IF NOT EXISTS sessions_single_open ON sessions ((1)) WHERE end_time IS NULL;
CREATE INDEX IF NOT EXISTS sessions_start ON sessions (start_time);
CREATE TABLE IF NOT EXISTS active_session (
  key TEXT PRIMARY KEY CHECK (key = 'current'),
  session_id TEXT NOT NULL,
  start_time TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create session tables: %w", err)
	}
	return nil
}

// inTx runs fn in one transaction so decision reads and their writes cannot
// be split by a concurrent process.
func (s *SQLiteSessionStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) StartSession(ctx context.Context, session domain.Session) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var existing string
		err := tx.QueryRowContext(ctx, `SELECT id FROM sessions WHERE end_time IS NULL`).Scan(&existing)
		if err == nil {
			return apperrors.ErrAlreadyActive
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check active session: %w", err)
		}
		start := formatTime(session.Start)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (id, start_time, end_time, duration_sec) VALUES (?, ?, NULL, NULL)`,
			session.ID, start,
		); err != nil {
			return fmt.Errorf("insert open session: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO active_session (key, session_id, start_time) VALUES ('current', ?, ?)
			 ON CONFLICT(key) DO UPDATE SET session_id=excluded.session_id, start_time=excluded.start_time`,
			session.ID, start,
		); err != nil {
			return fmt.Errorf("set active pointer: %w", err)
		}
		return nil
	})
}

func (s *SQLiteSessionStore) StopSession(ctx context.Context, end time.Time) (domain.Session, error) {
	var stopped domain.Session
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var id, startText string
		err := tx.QueryRowContext(ctx, `SELECT id, start_time FROM sessions WHERE end_time IS NULL`).Scan(&id, &startText)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNoActiveSession
		}
		if err != nil {
			return fmt.Errorf("find active session: %w", err)
		}
		start, err := parseTime(startText)
		if err != nil {
			return err
		}
		if end.Before(start) {
			end = start
		}
		duration := int64(end.Sub(start).Seconds())
		if _, err := tx.ExecContext(ctx,
			`UPDATE sessions SET end_time = ?, duration_sec = ? WHERE id = ?`,
			formatTime(end), duration, id,
		); err != nil {
			return fmt.Errorf("close session: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM active_session WHERE key = 'current'`); err != nil {
			return fmt.Errorf("clear active pointer: %w", err)
		}
		stopped = domain.Session{ID: id, Start: start, End: end.Local()}
		return nil
	})
	if err != nil {
		return domain.Session{}, err
	}
	return stopped, nil
}

func (s *SQLiteSessionStore) FindActive(ctx context.Context) (domain.Session, error) {
	var id, startText string
	err := s.db.QueryRowContext(ctx, `SELECT id, start_time FROM sessions WHERE end_time IS NULL`).Scan(&id, &startText)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("find active session: %w", err)
	}
	start, err := parseTime(startText)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{ID: id, Start: start}, nil
}

func (s *SQLiteSessionStore) AddCompleted(ctx context.Context, session domain.Session) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := checkOverlap(ctx, tx, session.Start, session.End, ""); err != nil {
			return err
		}
		return insertClosed(ctx, tx, session)
	})
}

func (s *SQLiteSessionStore) Update(ctx context.Context, id string, start, end time.Time) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := checkOverlap(ctx, tx, start, end, id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx,
			`UPDATE sessions SET start_time = ?, end_time = ?, duration_sec = ? WHERE id = ?`,
			formatTime(start), formatTime(end), int64(end.Sub(start).Seconds()), id,
		)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		if affected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

func (s *SQLiteSessionStore) ResolvePrefix(ctx context.Context, prefix string) (domain.Session, error) {
	if prefix == "" {
		return domain.Session{}, fmt.Errorf("%w: empty id prefix", apperrors.ErrInvalidInput)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, start_time, end_time FROM sessions WHERE id LIKE ? || '%' ORDER BY id`, prefix)
	if err != nil {
		return domain.Session{}, fmt.Errorf("resolve id prefix: %w", err)
	}
	defer rows.Close()

	var matches []domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return domain.Session{}, err
		}
		matches = append(matches, session)
	}
	if err := rows.Err(); err != nil {
		return domain.Session{}, fmt.Errorf("resolve id prefix: %w", err)
	}
	switch len(matches) {
	case 0:
		return domain.Session{}, apperrors.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return domain.Session{}, &apperrors.AmbiguousIDError{Prefix: prefix, Matches: ids}
	}
}

func (s *SQLiteSessionStore) Delete(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var endText sql.NullString
		err := tx.QueryRowContext(ctx, `SELECT end_time FROM sessions WHERE id = ?`, id).Scan(&endText)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if !endText.Valid {
			return apperrors.ErrSessionRunning
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	})
}

func (s *SQLiteSessionStore) ListClosed(ctx context.Context, from, to time.Time) ([]domain.Session, error) {
	query := `SELECT id, start_time, end_time FROM sessions WHERE end_time IS NOT NULL`
	args := []any{}
	if !from.IsZero() {
		query += ` AND start_time >= ?`
		args = append(args, formatTime(from))
	}
	if !to.IsZero() {
		query += ` AND start_time < ?`
		args = append(args, formatTime(to))
	}
	query += ` ORDER BY start_time ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *SQLiteSessionStore) ImportBatch(ctx context.Context, sessions []domain.Session, skipConflicts bool) (int, []sessionout.BatchConflict, error) {
	imported := 0
	var skipped []sessionout.BatchConflict
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		for index, session := range sessions {
			err := checkOverlap(ctx, tx, session.Start, session.End, "")
			var overlap *apperrors.OverlapError
			if errors.As(err, &overlap) {
				if !skipConflicts {
					return err
				}
				skipped = append(skipped, sessionout.BatchConflict{Index: index, Reason: overlap.Error()})
				continue
			}
			if err != nil {
				return err
			}
			if err := insertClosed(ctx, tx, session); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return imported, skipped, nil
}

// checkOverlap finds every closed session whose [start, end) interval
// intersects the proposed one: stored_end > start AND stored_start < end.
// excludeID skips the session being edited.
func checkOverlap(ctx context.Context, tx *sql.Tx, start, end time.Time, excludeID string) error {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, start_time, end_time FROM sessions
		 WHERE end_time IS NOT NULL AND id != ? AND end_time > ? AND start_time < ?
		 ORDER BY start_time ASC`,
		excludeID, formatTime(start), formatTime(end),
	)
	if err != nil {
		return fmt.Errorf("overlap check: %w", err)
	}
	defer rows.Close()

	var conflicts []apperrors.Conflict
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return err
		}
		conflicts = append(conflicts, apperrors.Conflict{ID: session.ID, Start: session.Start, End: session.End})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("overlap check: %w", err)
	}
	if len(conflicts) > 0 {
		return &apperrors.OverlapError{Conflicts: conflicts}
	}
	return nil
}

func insertClosed(ctx context.Context, tx *sql.Tx, session domain.Session) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (id, start_time, end_time, duration_sec) VALUES (?, ?, ?, ?)`,
		session.ID, formatTime(session.Start), formatTime(session.End), session.DurationSeconds(),
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func scanSession(rows *sql.Rows) (domain.Session, error) {
	var id, startText string
	var endText sql.NullString
	if err := rows.Scan(&id, &startText, &endText); err != nil {
		return domain.Session{}, fmt.Errorf("scan session: %w", err)
	}
	start, err := parseTime(startText)
	if err != nil {
		return domain.Session{}, err
	}
	session := domain.Session{ID: id, Start: start}
	if endText.Valid {
		end, err := parseTime(endText.String)
		if err != nil {
			return domain.Session{}, err
		}
		session.End = end
	}
	return session, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(text string) (time.Time, error) {
	t, err := time.Parse(timeLayout, text)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt timestamp %q: %w", text, err)
	}
	return t.Local(), nil
}
