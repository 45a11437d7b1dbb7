package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// RecordRepository persists weekly diet records as JSON snapshots keyed by
// (user, week start).
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Save upserts the record for a user's week.
func (r *RecordRepository) Save(ctx context.Context, userID string, rec WeeklyDietRecord) error {
	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal diet record: %w", err)
	}

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO diet_records (user_id, week_start_date, record_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, week_start_date) DO UPDATE SET
			record_data = excluded.record_data,
			updated_at = excluded.updated_at`,
		userID, rec.WeekStart.Format(dateLayout), string(recordJSON), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save diet record: %w", err)
	}
	return nil
}

// GetByWeek fetches the record for a user's week, or (nil, nil) when none
// exists.
func (r *RecordRepository) GetByWeek(ctx context.Context, userID string, weekStart time.Time) (*WeeklyDietRecord, error) {
	var recordJSON string
	err := r.db.QueryRowContext(ctx, `
		SELECT record_data FROM diet_records
		WHERE user_id = ? AND week_start_date = ?`,
		userID, weekStart.Format(dateLayout),
	).Scan(&recordJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load diet record: %w", err)
	}

	var rec WeeklyDietRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal diet record: %w", err)
	}
	return &rec, nil
}

// ListRecent returns up to limit records for a user, newest week first.
func (r *RecordRepository) ListRecent(ctx context.Context, userID string, limit int) ([]WeeklyDietRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT record_data FROM diet_records
		WHERE user_id = ?
		ORDER BY week_start_date DESC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list diet records: %w", err)
	}
	defer rows.Close()

	var records []WeeklyDietRecord
	for rows.Next() {
		var recordJSON string
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("failed to scan diet record: %w", err)
		}
		var rec WeeklyDietRecord
		if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal diet record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate diet records: %w", err)
	}
	return records, nil
}
