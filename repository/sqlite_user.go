package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
)

// sqliteUserRepo, UserRepository'nin SQLite implementasyonu.
// Roller users.roles kolonunda JSON dizisi olarak saklanır;
// okuma/yazmada RoleSet ile serialize edilir.
type sqliteUserRepo struct {
	db database.TxQuerier
}

// NewSQLiteUserRepo constructor. TxQuerier aldığı için hem *sql.DB hem
// transaction içindeki *sql.Tx ile kullanılabilir.
func NewSQLiteUserRepo(db database.TxQuerier) UserRepository {
	return &sqliteUserRepo{db: db}
}

func (r *sqliteUserRepo) Create(ctx context.Context, user *models.User) error {
	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return fmt.Errorf("failed to marshal roles: %w", err)
	}

	query := `
		INSERT INTO users (id, login, name, password_hash, roles)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRowContext(ctx, query,
		user.Login,
		user.Name,
		user.PasswordHash,
		string(rolesJSON),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return pkg.NewConflictError("login")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.Enabled = true
	return nil
}

func (r *sqliteUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *sqliteUserRepo) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	return r.getBy(ctx, "login = ?", login)
}

// getBy, tek satırlık kullanıcı sorgularının ortak gövdesi.
func (r *sqliteUserRepo) getBy(ctx context.Context, where string, arg any) (*models.User, error) {
	query := `
		SELECT id, login, name, password_hash, roles, enabled, created_at, updated_at
		FROM users WHERE ` + where + ` AND enabled = 1`

	user := &models.User{}
	var rolesJSON string

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Login, &user.Name, &user.PasswordHash,
		&rolesJSON, &user.Enabled, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal([]byte(rolesJSON), &user.Roles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roles: %w", err)
	}

	return user, nil
}

func (r *sqliteUserRepo) UpdateName(ctx context.Context, userID, name string) error {
	query := `
		UPDATE users SET name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, name, userID)
}

func (r *sqliteUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, passwordHash, userID)
}

// exec, etkilenen satır sayısını kontrol eden update yardımcısı.
// 0 satır → hedef kullanıcı yok (veya disabled) → ErrNotFound.
func (r *sqliteUserRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
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
