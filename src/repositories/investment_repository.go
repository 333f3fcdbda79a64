package repositories

import (
	"context"
	"database/sql"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type InvestmentRepository interface {
	GetAll(ctx context.Context) ([]models.Investment, error)
	GetByID(ctx context.Context, id int) (*models.Investment, error)
	Create(ctx context.Context, investment *models.Investment) error
	Update(ctx context.Context, id int, investment *models.Investment) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumTotalValue(ctx context.Context) (float64, error)
	SumByType(ctx context.Context) ([]schemas.CategoryValue, error)
}

type investmentRepo struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) InvestmentRepository {
	return &investmentRepo{db: db}
}

const investmentColumns = `id, name, type, symbol, shares, price_per_share, total_value, purchase_date, created_at, updated_at`

func scanInvestment(row interface{ Scan(...interface{}) error }, inv *models.Investment) error {
	return row.Scan(&inv.ID, &inv.Name, &inv.Type, &inv.Symbol, &inv.Shares, &inv.PricePerShare,
		&inv.TotalValue, &inv.PurchaseDate, &inv.CreatedAt, &inv.UpdatedAt)
}

func (r *investmentRepo) GetAll(ctx context.Context) ([]models.Investment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+investmentColumns+` FROM investments ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		if err := scanInvestment(rows, &inv); err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func (r *investmentRepo) GetByID(ctx context.Context, id int) (*models.Investment, error) {
	var inv models.Investment
	err := scanInvestment(r.db.QueryRowContext(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id), &inv)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *investmentRepo) Create(ctx context.Context, investment *models.Investment) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO investments (name, type, symbol, shares, price_per_share, total_value, purchase_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		investment.Name, investment.Type, investment.Symbol, investment.Shares,
		investment.PricePerShare, investment.TotalValue, dateArgPtr(investment.PurchaseDate),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	investment.ID = int(id)
	return nil
}

func (r *investmentRepo) Update(ctx context.Context, id int, investment *models.Investment) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE investments
		 SET name = ?, type = ?, symbol = ?, shares = ?, price_per_share = ?,
		     total_value = ?, purchase_date = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		investment.Name, investment.Type, investment.Symbol, investment.Shares,
		investment.PricePerShare, investment.TotalValue, dateArgPtr(investment.PurchaseDate), id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *investmentRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *investmentRepo) SumTotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_value), 0) FROM investments`).Scan(&total)
	return total, err
}

func (r *investmentRepo) SumByType(ctx context.Context) ([]schemas.CategoryValue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT type, SUM(total_value) FROM investments GROUP BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []schemas.CategoryValue{}
	for rows.Next() {
		var cv schemas.CategoryValue
		if err := rows.Scan(&cv.Category, &cv.Value); err != nil {
			return nil, err
		}
		values = append(values, cv)
	}
	return values, rows.Err()
}
