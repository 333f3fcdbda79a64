package repositories

import (
	"context"
	"database/sql"

	"fintrack/src/models"
)

type OwnershipStakeRepository interface {
	GetAll(ctx context.Context) ([]models.OwnershipStake, error)
	GetByID(ctx context.Context, id int) (*models.OwnershipStake, error)
	Create(ctx context.Context, stake *models.OwnershipStake) error
	Update(ctx context.Context, id int, stake *models.OwnershipStake) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumCurrentValue(ctx context.Context) (float64, error)
}

type ownershipStakeRepo struct {
	db *sql.DB
}

func NewOwnershipStakeRepository(db *sql.DB) OwnershipStakeRepository {
	return &ownershipStakeRepo{db: db}
}

const ownershipStakeColumns = `id, name, business_name, percentage, current_value, investment_date, notes, created_at, updated_at`

func scanOwnershipStake(row interface{ Scan(...interface{}) error }, stake *models.OwnershipStake) error {
	return row.Scan(&stake.ID, &stake.Name, &stake.BusinessName, &stake.Percentage, &stake.CurrentValue,
		&stake.InvestmentDate, &stake.Notes, &stake.CreatedAt, &stake.UpdatedAt)
}

func (r *ownershipStakeRepo) GetAll(ctx context.Context) ([]models.OwnershipStake, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+ownershipStakeColumns+` FROM ownership_stakes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stakes := []models.OwnershipStake{}
	for rows.Next() {
		var stake models.OwnershipStake
		if err := scanOwnershipStake(rows, &stake); err != nil {
			return nil, err
		}
		stakes = append(stakes, stake)
	}
	return stakes, rows.Err()
}

func (r *ownershipStakeRepo) GetByID(ctx context.Context, id int) (*models.OwnershipStake, error) {
	var stake models.OwnershipStake
	err := scanOwnershipStake(r.db.QueryRowContext(ctx, `SELECT `+ownershipStakeColumns+` FROM ownership_stakes WHERE id = ?`, id), &stake)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

func (r *ownershipStakeRepo) Create(ctx context.Context, stake *models.OwnershipStake) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ownership_stakes (name, business_name, percentage, current_value, investment_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stake.Name, stake.BusinessName, stake.Percentage, stake.CurrentValue,
		dateArgPtr(stake.InvestmentDate), stake.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stake.ID = int(id)
	return nil
}

func (r *ownershipStakeRepo) Update(ctx context.Context, id int, stake *models.OwnershipStake) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ownership_stakes
		 SET name = ?, business_name = ?, percentage = ?, current_value = ?,
		     investment_date = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		stake.Name, stake.BusinessName, stake.Percentage, stake.CurrentValue,
		dateArgPtr(stake.InvestmentDate), stake.Notes, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *ownershipStakeRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ownership_stakes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *ownershipStakeRepo) SumCurrentValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(current_value), 0) FROM ownership_stakes`).Scan(&total)
	return total, err
}
