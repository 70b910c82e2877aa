package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
)

// sqliteProvinceRepo, ProvinceRepository'nin SQLite implementasyonu.
type sqliteProvinceRepo struct {
	db database.TxQuerier
}

func NewSQLiteProvinceRepo(db database.TxQuerier) ProvinceRepository {
	return &sqliteProvinceRepo{db: db}
}

func (r *sqliteProvinceRepo) GetAll(ctx context.Context) ([]models.Province, error) {
	query := `
		SELECT id, name, enabled, created_at FROM provinces
		WHERE enabled = 1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list provinces: %w", err)
	}
	defer rows.Close()

	provinces := []models.Province{}
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.ID, &p.Name, &p.Enabled, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan province row: %w", err)
		}
		provinces = append(provinces, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate province rows: %w", err)
	}

	return provinces, nil
}

func (r *sqliteProvinceRepo) GetByID(ctx context.Context, id string) (*models.Province, error) {
	query := `SELECT id, name, enabled, created_at FROM provinces WHERE id = ? AND enabled = 1`

	p := &models.Province{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Enabled, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get province: %w", err)
	}

	return p, nil
}

func (r *sqliteProvinceRepo) Create(ctx context.Context, province *models.Province) error {
	query := `
		INSERT INTO provinces (id, name)
		VALUES (lower(hex(randomblob(8))), ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, province.Name).
		Scan(&province.ID, &province.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return pkg.NewConflictError("name")
		}
		return fmt.Errorf("failed to create province: %w", err)
	}

	province.Enabled = true
	return nil
}

func (r *sqliteProvinceRepo) Disable(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE provinces SET enabled = 0 WHERE id = ? AND enabled = 1`, id)
	if err != nil {
		return fmt.Errorf("failed to disable province: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
