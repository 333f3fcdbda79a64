package repositories

import (
	"context"
	"database/sql"
	"time"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type ExpenseRepository interface {
	GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Expense, error)
	GetByID(ctx context.Context, id int) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, id int, expense *models.Expense) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error)
	SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error)
	GetRecurring(ctx context.Context) ([]models.Expense, error)
	GetRecent(ctx context.Context, limit int) ([]models.Expense, error)
}

type expenseRepo struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

const expenseColumns = `id, description, amount, date, category, is_recurring, frequency, notes, created_at`

func scanExpense(row interface{ Scan(...interface{}) error }, exp *models.Expense) error {
	return row.Scan(&exp.ID, &exp.Description, &exp.Amount, &exp.Date, &exp.Category,
		&exp.IsRecurring, &exp.Frequency, &exp.Notes, &exp.CreatedAt)
}

func (r *expenseRepo) queryExpenses(ctx context.Context, query string, args ...interface{}) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Expense{}
	for rows.Next() {
		var exp models.Expense
		if err := scanExpense(rows, &exp); err != nil {
			return nil, err
		}
		records = append(records, exp)
	}
	return records, rows.Err()
}

// GetAll filters on the inclusive date range; either bound may be nil.
func (r *expenseRepo) GetAll(ctx context.Context, startDate, endDate *time.Time) ([]models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses`
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
	return r.queryExpenses(ctx, query, args...)
}

func (r *expenseRepo) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	var exp models.Expense
	err := scanExpense(r.db.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id), &exp)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *expenseRepo) Create(ctx context.Context, expense *models.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (description, amount, date, category, is_recurring, frequency, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.Description, expense.Amount, dateArg(expense.Date), expense.Category,
		expense.IsRecurring, expense.Frequency, expense.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	expense.ID = int(id)
	return nil
}

func (r *expenseRepo) Update(ctx context.Context, id int, expense *models.Expense) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses
		 SET description = ?, amount = ?, date = ?, category = ?, is_recurring = ?, frequency = ?, notes = ?
		 WHERE id = ?`,
		expense.Description, expense.Amount, dateArg(expense.Date), expense.Category,
		expense.IsRecurring, expense.Frequency, expense.Notes, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *expenseRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *expenseRepo) SumInRange(ctx context.Context, startDate, endDate time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date BETWEEN ? AND ?`,
		dateArg(startDate), dateArg(endDate),
	).Scan(&total)
	return total, err
}

func (r *expenseRepo) SumByCategory(ctx context.Context, startDate, endDate *time.Time) ([]schemas.CategoryTotal, error) {
	query := `SELECT category, SUM(amount) AS total FROM expenses`
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

func (r *expenseRepo) GetRecurring(ctx context.Context) ([]models.Expense, error) {
	return r.queryExpenses(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE is_recurring = 1 ORDER BY date DESC, id DESC`)
}

func (r *expenseRepo) GetRecent(ctx context.Context, limit int) ([]models.Expense, error) {
	return r.queryExpenses(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}
