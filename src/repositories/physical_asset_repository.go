package repositories

import (
	"context"
	"database/sql"

	"fintrack/src/models"
	"fintrack/src/schemas"
)

type PhysicalAssetRepository interface {
	GetAll(ctx context.Context) ([]models.PhysicalAsset, error)
	GetByID(ctx context.Context, id int) (*models.PhysicalAsset, error)
	Create(ctx context.Context, asset *models.PhysicalAsset) error
	Update(ctx context.Context, id int, asset *models.PhysicalAsset) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
	SumCurrentValue(ctx context.Context) (float64, error)
	SumByCategory(ctx context.Context) ([]schemas.CategoryValue, error)
}

type physicalAssetRepo struct {
	db *sql.DB
}

func NewPhysicalAssetRepository(db *sql.DB) PhysicalAssetRepository {
	return &physicalAssetRepo{db: db}
}

const physicalAssetColumns = `id, name, category, current_value, purchase_value, purchase_date, condition, notes, created_at, updated_at`

func scanPhysicalAsset(row interface{ Scan(...interface{}) error }, asset *models.PhysicalAsset) error {
	return row.Scan(&asset.ID, &asset.Name, &asset.Category, &asset.CurrentValue, &asset.PurchaseValue,
		&asset.PurchaseDate, &asset.Condition, &asset.Notes, &asset.CreatedAt, &asset.UpdatedAt)
}

func (r *physicalAssetRepo) GetAll(ctx context.Context) ([]models.PhysicalAsset, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+physicalAssetColumns+` FROM physical_assets ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.PhysicalAsset{}
	for rows.Next() {
		var asset models.PhysicalAsset
		if err := scanPhysicalAsset(rows, &asset); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *physicalAssetRepo) GetByID(ctx context.Context, id int) (*models.PhysicalAsset, error) {
	var asset models.PhysicalAsset
	err := scanPhysicalAsset(r.db.QueryRowContext(ctx, `SELECT `+physicalAssetColumns+` FROM physical_assets WHERE id = ?`, id), &asset)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *physicalAssetRepo) Create(ctx context.Context, asset *models.PhysicalAsset) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO physical_assets (name, category, current_value, purchase_value, purchase_date, condition, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		asset.Name, asset.Category, asset.CurrentValue, asset.PurchaseValue,
		dateArgPtr(asset.PurchaseDate), asset.Condition, asset.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	asset.ID = int(id)
	return nil
}

func (r *physicalAssetRepo) Update(ctx context.Context, id int, asset *models.PhysicalAsset) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE physical_assets
		 SET name = ?, category = ?, current_value = ?, purchase_value = ?,
		     purchase_date = ?, condition = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		asset.Name, asset.Category, asset.CurrentValue, asset.PurchaseValue,
		dateArgPtr(asset.PurchaseDate), asset.Condition, asset.Notes, id,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *physicalAssetRepo) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM physical_assets WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *physicalAssetRepo) SumCurrentValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(current_value), 0) FROM physical_assets`).Scan(&total)
	return total, err
}

func (r *physicalAssetRepo) SumByCategory(ctx context.Context) ([]schemas.CategoryValue, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, SUM(current_value) FROM physical_assets GROUP BY category`)
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
