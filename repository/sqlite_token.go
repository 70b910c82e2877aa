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

// sqliteTokenRepo, TokenRepository'nin SQLite implementasyonu.
type sqliteTokenRepo struct {
	db database.TxQuerier
}

func NewSQLiteTokenRepo(db database.TxQuerier) TokenRepository {
	return &sqliteTokenRepo{db: db}
}

func (r *sqliteTokenRepo) Create(ctx context.Context, userID string) (*models.SessionToken, error) {
	query := `
		INSERT INTO tokens (id, user_id)
		VALUES (lower(hex(randomblob(8))), ?)
		RETURNING id, created_at`

	token := &models.SessionToken{UserID: userID, Valid: true}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

func (r *sqliteTokenRepo) GetByID(ctx context.Context, id string) (*models.SessionToken, error) {
	// valid filtresi YOK: iptal edilmiş token da dönmelidir.
	// Geçerlilik kararı service katmanının işidir.
	query := `SELECT id, user_id, valid, created_at FROM tokens WHERE id = ?`

	token := &models.SessionToken{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID, &token.UserID, &token.Valid, &token.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

func (r *sqliteTokenRepo) Invalidate(ctx context.Context, id string) error {
	// Zaten valid=0 olan token'ı tekrar invalidate etmek no-op'tur ama
	// satır bulunduğu sürece hata değildir — WHERE'de valid koşulu yok.
	res, err := r.db.ExecContext(ctx, `UPDATE tokens SET valid = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to invalidate token: %w", err)
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
