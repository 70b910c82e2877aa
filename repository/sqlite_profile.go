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

// sqliteProfileRepo, ProfileRepository'nin SQLite implementasyonu.
// province_id nullable FK'dir: boş string NULL olarak yazılır
// (NULLIF), NULL boş string olarak okunur (COALESCE).
type sqliteProfileRepo struct {
	db database.TxQuerier
}

func NewSQLiteProfileRepo(db database.TxQuerier) ProfileRepository {
	return &sqliteProfileRepo{db: db}
}

func (r *sqliteProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT id, user_id, name, phone, email, address, picture,
		       COALESCE(province_id, ''), enabled, created_at, updated_at
		FROM profiles WHERE user_id = ? AND enabled = 1`

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Phone, &p.Email, &p.Address,
		&p.Picture, &p.ProvinceID, &p.Enabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (r *sqliteProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, name, phone, email, address, picture, province_id)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, NULLIF(?, ''))
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Phone,
		profile.Email,
		profile.Address,
		profile.Picture,
		profile.ProvinceID,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return pkg.NewConflictError("user_id")
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	profile.Enabled = true
	return nil
}

func (r *sqliteProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET name = ?, phone = ?, email = ?, address = ?, picture = ?,
		    province_id = NULLIF(?, ''), updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	res, err := r.db.ExecContext(ctx, query,
		profile.Name,
		profile.Phone,
		profile.Email,
		profile.Address,
		profile.Picture,
		profile.ProvinceID,
		profile.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
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
