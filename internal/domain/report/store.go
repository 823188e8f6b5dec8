package report

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists one row per (year, month, day). The report body lives in a
// JSONB column and is overwritten wholesale on save; the adjustment lives
// in its own column so it survives overwrites and can be merged alone,
// mirroring the one-field-merge contract of the overlay.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// GetMonth returns every saved report for the year/month, ordered by day
// ascending. A month with no reports returns an empty slice.
func (s *Store) GetMonth(ctx context.Context, year, month int) ([]DayReport, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT data, COALESCE(adjusted_cash, 0)
    FROM day_reports
    WHERE year = $1 AND month = $2
    ORDER BY day ASC
  `, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []DayReport{}
	for rows.Next() {
		var raw []byte
		var adjusted float64
		if err := rows.Scan(&raw, &adjusted); err != nil {
			return nil, err
		}
		var d DayReport
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		d.AdjustedCash = adjusted
		days = append(days, d)
	}
	return days, rows.Err()
}

// GetDay returns a single day's report, or ErrNotFound.
func (s *Store) GetDay(ctx context.Context, year, month, day int) (DayReport, error) {
	var raw []byte
	var adjusted float64
	err := s.DB.QueryRow(ctx, `
    SELECT data, COALESCE(adjusted_cash, 0)
    FROM day_reports
    WHERE year = $1 AND month = $2 AND day = $3
  `, year, month, day).Scan(&raw, &adjusted)
	if errors.Is(err, pgx.ErrNoRows) {
		return DayReport{}, ErrNotFound
	}
	if err != nil {
		return DayReport{}, err
	}

	var d DayReport
	if err := json.Unmarshal(raw, &d); err != nil {
		return DayReport{}, err
	}
	d.AdjustedCash = adjusted
	return d, nil
}

// SaveDay upserts the whole report for its date. The adjustment column is
// left untouched: overwriting a day never clears an admin's adjustment.
func (s *Store) SaveDay(ctx context.Context, d DayReport) error {
	body := d
	body.AdjustedCash = 0
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(ctx, `
    INSERT INTO day_reports (year, month, day, data, updated_at)
    VALUES ($1, $2, $3, $4, now())
    ON CONFLICT (year, month, day)
    DO UPDATE SET data = EXCLUDED.data, updated_at = now()
  `, d.Year, d.Month, d.Day, raw)
	return err
}

// SaveAdjustment merges only the adjustment field into an existing day.
func (s *Store) SaveAdjustment(ctx context.Context, year, month, day int, amount float64) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE day_reports
    SET adjusted_cash = $4, updated_at = now()
    WHERE year = $1 AND month = $2 AND day = $3
  `, year, month, day, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
