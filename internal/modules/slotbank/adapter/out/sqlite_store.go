package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"timecli/internal/modules/slotbank/domain"
	apperrors "timecli/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z"

type SQLiteSlotStore struct {
	db *sql.DB
}

func NewSQLiteSlotStore(db *sql.DB) (*SQLiteSlotStore, error) {
	store := &SQLiteSlotStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSlotStore) ensureSchema(ctx context.Context) error {
	columns := make([]string, 0, len(domain.Slots()))
	for _, slot := range domain.Slots() {
		columns = append(columns, fmt.Sprintf("  %s INTEGER NOT NULL DEFAULT 0", slot.Column))
	}
	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS daily_study_logs (
  session_date TEXT PRIMARY KEY,
%s
);
CREATE TABLE IF NOT EXISTS time_bank_transactions (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  type TEXT NOT NULL CHECK (type IN ('deposit', 'withdrawal')),
  minutes INTEGER NOT NULL CHECK (minutes > 0),
  source_session_date TEXT,
  source_slot_key TEXT,
  description TEXT
);
`, strings.Join(columns, ",\n"))
	if _, err := s.db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create slot tables: %w", err)
	}
	return nil
}

func (s *SQLiteSlotStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
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

func (s *SQLiteSlotStore) WriteSlot(ctx context.Context, date string, slot domain.Slot, minutes int, deposit *domain.Transaction) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := ensureRow(ctx, tx, date); err != nil {
			return err
		}
		// column names come from the fixed slot table, never from input
		stmt := fmt.Sprintf(`UPDATE daily_study_logs SET %s = ? WHERE session_date = ?`, slot.Column)
		if _, err := tx.ExecContext(ctx, stmt, minutes, date); err != nil {
			return fmt.Errorf("write slot %s: %w", slot.Key, err)
		}
		if deposit != nil {
			if err := insertTransaction(ctx, tx, *deposit); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteSlotStore) Redeem(ctx context.Context, date string, slot domain.Slot, requested, target int, withdrawal domain.Transaction) (int, int, int, error) {
	var redeemed, newValue, newBalance int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if err := ensureRow(ctx, tx, date); err != nil {
			return err
		}
		var current int
		query := fmt.Sprintf(`SELECT %s FROM daily_study_logs WHERE session_date = ?`, slot.Column)
		if err := tx.QueryRowContext(ctx, query, date).Scan(&current); err != nil {
			return fmt.Errorf("read slot %s: %w", slot.Key, err)
		}
		balance, err := balanceInTx(ctx, tx)
		if err != nil {
			return err
		}
		switch {
		case balance <= 0:
			return apperrors.ErrBankEmpty
		case current >= target:
			return apperrors.ErrSlotFull
		}
		amount := domain.CapRedeem(requested, target, current, balance)
		if amount <= 0 {
			return apperrors.ErrNothingToRedeem
		}
		stmt := fmt.Sprintf(`UPDATE daily_study_logs SET %s = ? WHERE session_date = ?`, slot.Column)
		if _, err := tx.ExecContext(ctx, stmt, current+amount, date); err != nil {
			return fmt.Errorf("update slot %s: %w", slot.Key, err)
		}
		withdrawal.Minutes = amount
		if err := insertTransaction(ctx, tx, withdrawal); err != nil {
			return err
		}
		redeemed, newValue, newBalance = amount, current+amount, balance-amount
		return nil
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return redeemed, newValue, newBalance, nil
}

func (s *SQLiteSlotStore) Balance(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	return balanceInTx(ctx, tx)
}

func balanceInTx(ctx context.Context, tx *sql.Tx) (int, error) {
	const query = `
SELECT COALESCE(SUM(CASE type WHEN 'deposit' THEN minutes ELSE -minutes END), 0)
FROM time_bank_transactions`
	var balance int
	if err := tx.QueryRowContext(ctx, query).Scan(&balance); err != nil {
		return 0, fmt.Errorf("compute bank balance: %w", err)
	}
	return balance, nil
}

func (s *SQLiteSlotStore) Transactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, type, minutes, source_session_date, source_slot_key, description
FROM time_bank_transactions
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var entry domain.Transaction
		var createdAt, entryType string
		var sourceDate, sourceSlot, description sql.NullString
		if err := rows.Scan(&entry.ID, &createdAt, &entryType, &entry.Minutes, &sourceDate, &sourceSlot, &description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		at, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("corrupt timestamp %q: %w", createdAt, err)
		}
		entry.CreatedAt = at.Local()
		entry.Type = domain.TransactionType(entryType)
		entry.SourceDate = sourceDate.String
		entry.SourceSlot = sourceSlot.String
		entry.Description = description.String
		transactions = append(transactions, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

func (s *SQLiteSlotStore) DayGrid(ctx context.Context, date string) (map[string]int, error) {
	grid := make(map[string]int, len(domain.Slots()))
	columns := make([]string, 0, len(domain.Slots()))
	for _, slot := range domain.Slots() {
		grid[slot.Column] = 0
		columns = append(columns, slot.Column)
	}
	query := fmt.Sprintf(`SELECT %s FROM daily_study_logs WHERE session_date = ?`, strings.Join(columns, ", "))
	row := s.db.QueryRowContext(ctx, query, date)
	values := make([]int, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return grid, nil
		}
		return nil, fmt.Errorf("read day grid: %w", err)
	}
	for i, column := range columns {
		grid[column] = values[i]
	}
	return grid, nil
}

func (s *SQLiteSlotStore) DailyTotals(ctx context.Context) (map[string]int, error) {
	columns := make([]string, 0, len(domain.Slots()))
	for _, slot := range domain.Slots() {
		columns = append(columns, slot.Column)
	}
	query := fmt.Sprintf(`SELECT session_date, %s FROM daily_study_logs`, strings.Join(columns, " + "))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sum daily totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var date string
		var minutes int
		if err := rows.Scan(&date, &minutes); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		totals[date] = minutes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sum daily totals: %w", err)
	}
	return totals, nil
}

func (s *SQLiteSlotStore) Reset(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM daily_study_logs`); err != nil {
			return fmt.Errorf("clear slot grid: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM time_bank_transactions`); err != nil {
			return fmt.Errorf("clear bank ledger: %w", err)
		}
		return nil
	})
}

func ensureRow(ctx context.Context, tx *sql.Tx, date string) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO daily_study_logs (session_date) VALUES (?) ON CONFLICT(session_date) DO NOTHING`, date,
	); err != nil {
		return fmt.Errorf("ensure day row: %w", err)
	}
	return nil
}

func insertTransaction(ctx context.Context, tx *sql.Tx, entry domain.Transaction) error {
	if _, err := tx.ExecContext(ctx, `
INSERT INTO time_bank_transactions (id, created_at, type, minutes, source_session_date, source_slot_key, description)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.UTC().Format(timeLayout),
		string(entry.Type),
		entry.Minutes,
		entry.SourceDate,
		entry.SourceSlot,
		entry.Description,
	); err != nil {
		return fmt.Errorf("append bank transaction: %w", err)
	}
	return nil
}
