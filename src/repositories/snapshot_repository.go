package repositories

import (
	"context"
	"database/sql"
	"time"

	"fintrack/src/models"
)

type SnapshotRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*models.NetWorthSnapshot, error)
	Insert(ctx context.Context, snapshot *models.NetWorthSnapshot) error
	UpdateByDate(ctx context.Context, snapshot *models.NetWorthSnapshot) error
	GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error)
	GetLatestInRange(ctx context.Context, startDate, endDate time.Time) (*models.NetWorthSnapshot, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type snapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

const snapshotColumns = `id, date, total_assets, total_liabilities, net_worth, created_at`

func scanSnapshot(row interface{ Scan(...interface{}) error }, s *models.NetWorthSnapshot) error {
	return row.Scan(&s.ID, &s.Date, &s.TotalAssets, &s.TotalLiabilities, &s.NetWorth, &s.CreatedAt)
}

func (r *snapshotRepo) GetByDate(ctx context.Context, date time.Time) (*models.NetWorthSnapshot, error) {
	var s models.NetWorthSnapshot
	err := scanSnapshot(r.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM net_worth_history WHERE date = ?`, dateArg(date)), &s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *snapshotRepo) Insert(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO net_worth_history (date, total_assets, total_liabilities, net_worth)
		 VALUES (?, ?, ?, ?)`,
		dateArg(snapshot.Date), snapshot.TotalAssets, snapshot.TotalLiabilities, snapshot.NetWorth,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	snapshot.ID = int(id)
	return nil
}

// UpdateByDate overwrites the stored totals of the snapshot keyed by
// snapshot.Date.
func (r *snapshotRepo) UpdateByDate(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE net_worth_history
		 SET total_assets = ?, total_liabilities = ?, net_worth = ?
		 WHERE date = ?`,
		snapshot.TotalAssets, snapshot.TotalLiabilities, snapshot.NetWorth, dateArg(snapshot.Date),
	)
	return err
}

// GetHistory returns snapshots newest first, optionally range-filtered
// (inclusive) and limited. A non-positive limit means no limit.
func (r *snapshotRepo) GetHistory(ctx context.Context, startDate, endDate *time.Time, limit int) ([]models.NetWorthSnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM net_worth_history`
	args := []interface{}{}

	switch {
	case startDate != nil && endDate != nil:
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, dateArg(*startDate), dateArg(*endDate))
	case startDate != nil:
		query += ` WHERE date >= ?`
		args = append(args, dateArg(*startDate))
	case endDate != nil:
		query += ` WHERE date <= ?`
		args = append(args, dateArg(*endDate))
	}

	query += ` ORDER BY date DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.NetWorthSnapshot{}
	for rows.Next() {
		var s models.NetWorthSnapshot
		if err := scanSnapshot(rows, &s); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *snapshotRepo) GetLatestInRange(ctx context.Context, startDate, endDate time.Time) (*models.NetWorthSnapshot, error) {
	var s models.NetWorthSnapshot
	err := scanSnapshot(r.db.QueryRowContext(ctx,
		`SELECT `+snapshotColumns+` FROM net_worth_history
		 WHERE date BETWEEN ? AND ?
		 ORDER BY date DESC
		 LIMIT 1`,
		dateArg(startDate), dateArg(endDate)), &s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *snapshotRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM net_worth_history WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}
