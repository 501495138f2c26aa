package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finrec/finrec/internal/storage"
)

const recordColumns = "id, description, amount, date, category, record_type, favorite"

func (s *sqliteStore) GetRecordByID(ctx context.Context, id int64) (storage.Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE id = ?", id)
	return recordFromRow(row.Scan)
}

func (s *sqliteStore) InsertRecord(ctx context.Context, record storage.Record) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO records(description, amount, date, category, record_type, favorite)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.Description(), record.Amount().String(), record.Date().Unix(),
		record.Category(), int(record.Type()), boolToInt(record.IsFavorite()))
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (s *sqliteStore) UpdateRecord(ctx context.Context, record storage.Record) (int64, error) {
	r, err := s.db.ExecContext(ctx,
		`UPDATE records SET description = ?, amount = ?, date = ?,
		 category = ?, record_type = ?, favorite = ?
		 WHERE id = ?`,
		record.Description(), record.Amount().String(), record.Date().Unix(),
		record.Category(), int(record.Type()), boolToInt(record.IsFavorite()),
		record.ID())
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}

func (s *sqliteStore) DeleteRecord(ctx context.Context, id int64) (int64, error) {
	r, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return r.RowsAffected()
}

func (s *sqliteStore) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	r, err := s.db.ExecContext(ctx,
		"UPDATE records SET favorite = ? WHERE id = ?", boolToInt(favorite), id)
	if err != nil {
		return err
	}

	count, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return &storage.NotFoundError{}
	}

	return nil
}

func (s *sqliteStore) GetRecords(ctx context.Context) ([]storage.Record, error) {
	// The id tie-break keeps the iteration order deterministic for
	// records sharing a date.
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+recordColumns+" FROM records ORDER BY date DESC, id ASC")
	if err != nil {
		return []storage.Record{}, err
	}

	if rows.Err() != nil {
		return []storage.Record{}, rows.Err()
	}

	defer rows.Close()

	records := []storage.Record{}

	for rows.Next() {
		rec, recordErr := recordFromRow(rows.Scan)
		if recordErr != nil {
			return []storage.Record{}, recordErr
		}

		records = append(records, rec)
	}

	return records, nil
}

func (s *sqliteStore) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM records ORDER BY category ASC")
	if err != nil {
		return []string{}, err
	}

	if rows.Err() != nil {
		return []string{}, rows.Err()
	}

	defer rows.Close()

	categories := []string{}

	for rows.Next() {
		var category string
		if scanErr := rows.Scan(&category); scanErr != nil {
			return []string{}, scanErr
		}
		categories = append(categories, category)
	}

	return categories, nil
}

func recordFromRow(scan func(dest ...any) error) (storage.Record, error) {
	var id int64
	var description string
	var amount string
	var date int64
	var category string
	var recordType int
	var favorite int

	if err := scan(&id, &description, &amount, &date, &category, &recordType, &favorite); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &storage.NotFoundError{}
		}
		return nil, err
	}

	amountValue, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount stored for record %d: %w", id, err)
	}

	return storage.NewRecord(
		id,
		description,
		category,
		amountValue,
		time.Unix(date, 0).UTC(),
		storage.RecordType(recordType),
		favorite != 0,
	), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
