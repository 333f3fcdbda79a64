package repositories

import (
	"context"
	"database/sql"
	"time"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type IncomeRepository interface {
	GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Income, error)
	GetByID(ctx context.Context, id int) (*models.Income, error)
	Create(ctx context.Context, income *models.Income) error
	Update(ctx context.Context, id int, income *models.Income) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error)
	SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error)
	GetRecurring(ctx context.Context) ([]models.Income, error)
	GetRecent(ctx context.Context, limit int) ([]models.Income, error)
}

type incomeRepo struct {
	db *sql.DB
}

func NewIncomeRepository(db *sql.DB) IncomeRepository {
	return &incomeRepo{db: db}
}

const incomeColumns = `id, source, amount, date, category, is_recurring, frequency, notes, created_at`

func scanIncome(row interface{ Scan(...interface{}) error }, inc *models.Income) error {
	return row.Scan(&inc.ID, &inc.Source, &inc.Amount, &inc.Date, &inc.Category,
		&inc.IsRecurring, &inc.Frequency, &inc.Notes, &inc.CreatedAt)
}

func (r *incomeRepo) queryIncome(ctx context.Context, query string, args ...interface{}) ([]models.Income, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Income{}
	for rows.Next() {
		var inc models.Income
		if err := scanIncome(rows, &inc); err != nil {
			return nil, err
		}
		records = append(records, inc)
	}
	return records, rows.Err()
}

// GetAll filters on the inclusive date range; either bound may be nil.
func (r *incomeRepo) GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Income, error) {
	query := `SELECT ` + incomeColumns + ` FROM income`
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

	query += ` ORDER BY date DESC, id DESC`
	return r.queryIncome(ctx, query, args...)
}

func (r *incomeRepo) GetByID(ctx context.Context, id int) (*models.Income, error) {
	var inc models.Income
	err := scanIncome(r.db.QueryRowContext(ctx, `SELECT `+incomeColumns+` FROM income WHERE id = ?`, id), &inc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (r *incomeRepo) Create(ctx context.Context, income *models.Income) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO income (source, amount, date, category, is_recurring, frequency, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		income.Source, income.Amount, dateArg(income.Date), income.Category,
		income.IsRecurring, income.Frequency, income.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	income.ID = int(id)
	return nil
}

func (r *incomeRepo) Update(ctx context.Context, id int, income *models.Income) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE income
		 SET source = ?, amount = ?, date = ?, category = ?, is_recurring = ?, frequency = ?, notes = ?
		 WHERE id = ?`,
		income.Source, income.Amount, dateArg(income.Date), income.Category,
		income.IsRecurring, income.Frequency, income.Notes, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *incomeRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM income WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *incomeRepo) SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM income WHERE date BETWEEN ? AND ?`,
		dateArg(startDate), dateArg(endDate),
	).Scan(&total)
	return total, err
}

func (r *incomeRepo) SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	query := `SELECT category, SUM(amount) AS total FROM income`
	args := []interface{}{}
	if startDate != nil && endDate != nil {
		query += ` WHERE date BETWEEN ? AND ?`
		args = append(args, dateArg(*startDate), dateArg(*endDate))
	}
	query += ` GROUP BY category ORDER BY total DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := []schemas.CategoryTotal{}
	for rows.Next() {
		var ct schemas.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, err
		}
		totals = append(totals, ct)
	}
	return totals, rows.Err()
}

func (r *incomeRepo) GetRecurring(ctx context.Context) ([]models.Income, error) {
	return r.queryIncome(ctx, `SELECT `+incomeColumns+` FROM income WHERE is_recurring = 1 ORDER BY date DESC, id DESC`)
}

func (r *incomeRepo) GetRecent(ctx context.Context, limit int) ([]models.Income, error) {
	return r.queryIncome(ctx,
		`SELECT `+incomeColumns+` FROM income ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}
