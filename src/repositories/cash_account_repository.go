package repositories

import (
	"context"
	"database/sql"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type CashAccountRepository interface {
	GetAll(ctx context.Context) ([]models.CashAccount, error)
	GetByID(ctx context.Context, id int) (*models.CashAccount, error)
	Create(ctx context.Context, account *models.CashAccount) error
	Update(ctx context.Context, id int, account *models.CashAccount) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumBalance(ctx context.Context) (float64, error)
	SumByAccountType(ctx context.Context) ([]schemas.CategoryValue, error)
}

type cashAccountRepo struct {
	db *sql.DB
}

func NewCashAccountRepository(db *sql.DB) CashAccountRepository {
	return &cashAccountRepo{db: db}
}

const cashAccountColumns = `id, name, account_type, balance, interest_rate, created_at, updated_at`

func scanCashAccount(row interface{ Scan(...interface{}) error }, acc *models.CashAccount) error {
	return row.Scan(&acc.ID, &acc.Name, &acc.AccountType, &acc.Balance, &acc.InterestRate, &acc.CreatedAt, &acc.UpdatedAt)
}

func (r *cashAccountRepo) GetAll(ctx context.Context) ([]models.CashAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cashAccountColumns+` FROM cash_accounts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.CashAccount{}
	for rows.Next() {
		var acc models.CashAccount
		if err := scanCashAccount(rows, &acc); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

func (r *cashAccountRepo) GetByID(ctx context.Context, id int) (*models.CashAccount, error) {
	var acc models.CashAccount
	err := scanCashAccount(r.db.QueryRowContext(ctx, `SELECT `+cashAccountColumns+` FROM cash_accounts WHERE id = ?`, id), &acc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *cashAccountRepo) Create(ctx context.Context, account *models.CashAccount) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cash_accounts (name, account_type, balance, interest_rate) VALUES (?, ?, ?, ?)`,
		account.Name, account.AccountType, account.Balance, account.InterestRate,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	account.ID = int(id)
	return nil
}

func (r *cashAccountRepo) Update(ctx context.Context, id int, account *models.CashAccount) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cash_accounts
		 SET name = ?, account_type = ?, balance = ?, interest_rate = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		account.Name, account.AccountType, account.Balance, account.InterestRate, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *cashAccountRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cash_accounts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *cashAccountRepo) SumBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(balance), 0) FROM cash_accounts`).Scan(&total)
	return total, err
}

func (r *cashAccountRepo) SumByAccountType(ctx context.Context) ([]schemas.CategoryValue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT account_type, SUM(balance) FROM cash_accounts GROUP BY account_type`)
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
