package repositories

import (
	"context"
	"database/sql"
	"time"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type LiabilityRepository interface {
	GetAll(ctx context.Context) ([]models.Liability, error)
	GetByID(ctx context.Context, id int) (*models.Liability, error)
	Create(ctx context.Context, liability *models.Liability) error
	Update(ctx context.Context, id int, liability *models.Liability) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumCurrentBalance(ctx context.Context) (float64, error)
	SumByCategory(ctx context.Context) ([]schemas.CategoryTotal, error)
	SumMonthlyPayments(ctx context.Context) (float64, error)
	GetDueBetween(ctx context.Context, from, to time.Time) ([]models.Liability, error)
	GetOpen(ctx context.Context) ([]models.Liability, error)
}

type liabilityRepo struct {
	db *sql.DB
}

func NewLiabilityRepository(db *sql.DB) LiabilityRepository {
	return &liabilityRepo{db: db}
}

const liabilityColumns = `id, name, category, principal_amount, current_balance, interest_rate, monthly_payment, due_date, notes, created_at, updated_at`

func scanLiability(row interface{ Scan(...interface{}) error }, l *models.Liability) error {
	return row.Scan(&l.ID, &l.Name, &l.Category, &l.PrincipalAmount, &l.CurrentBalance,
		&l.InterestRate, &l.MonthlyPayment, &l.DueDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
}

func (r *liabilityRepo) queryLiabilities(ctx context.Context, query string, args ...interface{}) ([]models.Liability, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	liabilities := []models.Liability{}
	for rows.Next() {
		var l models.Liability
		if err := scanLiability(rows, &l); err != nil {
			return nil, err
		}
		liabilities = append(liabilities, l)
	}
	return liabilities, rows.Err()
}

func (r *liabilityRepo) GetAll(ctx context.Context) ([]models.Liability, error) {
	return r.queryLiabilities(ctx, `SELECT `+liabilityColumns+` FROM liabilities ORDER BY created_at DESC, id DESC`)
}

func (r *liabilityRepo) GetByID(ctx context.Context, id int) (*models.Liability, error) {
	var l models.Liability
	err := scanLiability(r.db.QueryRowContext(ctx, `SELECT `+liabilityColumns+` FROM liabilities WHERE id = ?`, id), &l)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *liabilityRepo) Create(ctx context.Context, liability *models.Liability) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO liabilities (name, category, principal_amount, current_balance, interest_rate, monthly_payment, due_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		liability.Name, liability.Category, liability.PrincipalAmount, liability.CurrentBalance,
		liability.InterestRate, liability.MonthlyPayment, dateArgPtr(liability.DueDate), liability.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	liability.ID = int(id)
	return nil
}

func (r *liabilityRepo) Update(ctx context.Context, id int, liability *models.Liability) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE liabilities
		 SET name = ?, category = ?, principal_amount = ?, current_balance = ?,
		     interest_rate = ?, monthly_payment = ?, due_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		liability.Name, liability.Category, liability.PrincipalAmount, liability.CurrentBalance,
		liability.InterestRate, liability.MonthlyPayment, dateArgPtr(liability.DueDate), liability.Notes, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *liabilityRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *liabilityRepo) SumCurrentBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(current_balance), 0) FROM liabilities`).Scan(&total)
	return total, err
}

func (r *liabilityRepo) SumByCategory(ctx context.Context) ([]schemas.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(current_balance) AS total FROM liabilities GROUP BY category ORDER BY total DESC`)
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

func (r *liabilityRepo) SumMonthlyPayments(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(monthly_payment), 0) FROM liabilities`).Scan(&total)
	return total, err
}

// GetDueBetween lists open liabilities whose due date falls within the
// inclusive range, soonest first.
func (r *liabilityRepo) GetDueBetween(ctx context.Context, from, to time.Time) ([]models.Liability, error) {
	return r.queryLiabilities(ctx,
		`SELECT `+liabilityColumns+` FROM liabilities
		 WHERE due_date IS NOT NULL
		   AND due_date >= ?
		   AND due_date <= ?
		   AND current_balance > 0
		 ORDER BY due_date ASC`,
		dateArg(from), dateArg(to),
	)
}

// GetOpen lists liabilities that still carry a balance.
func (r *liabilityRepo) GetOpen(ctx context.Context) ([]models.Liability, error) {
	return r.queryLiabilities(ctx,
		`SELECT `+liabilityColumns+` FROM liabilities
		 WHERE current_balance > 0
		 ORDER BY id ASC`,
	)
}
