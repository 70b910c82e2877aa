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

// sqliteLikeRepo, LikeRepository'nin SQLite implementasyonu.
type sqliteLikeRepo struct {
	db database.TxQuerier
}

func NewSQLiteLikeRepo(db database.TxQuerier) LikeRepository {
	return &sqliteLikeRepo{db: db}
}

func (r *sqliteLikeRepo) Create(ctx context.Context, like *models.Like) error {
	query := `
		INSERT INTO likes (id, user_id, pet_id)
		VALUES (lower(hex(randomblob(8))), ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, like.UserID, like.PetID).
		Scan(&like.ID, &like.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return pkg.NewConflictError("pet_id")
		}
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

func (r *sqliteLikeRepo) GetByID(ctx context.Context, id string) (*models.Like, error) {
	query := `SELECT id, user_id, pet_id, created_at FROM likes WHERE id = ?`

	like := &models.Like{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&like.ID, &like.UserID, &like.PetID, &like.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return like, nil
}

func (r *sqliteLikeRepo) ListByPet(ctx context.Context, petID string) ([]models.Like, error) {
	query := `
		SELECT id, user_id, pet_id, created_at FROM likes
		WHERE pet_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer rows.Close()

	likes := []models.Like{}
	for rows.Next() {
		var like models.Like
		if err := rows.Scan(&like.ID, &like.UserID, &like.PetID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like row: %w", err)
		}
		likes = append(likes, like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate like rows: %w", err)
	}

	return likes, nil
}

func (r *sqliteLikeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
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
