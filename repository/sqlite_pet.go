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

// sqlitePetRepo, PetRepository'nin SQLite implementasyonu.
type sqlitePetRepo struct {
	db database.TxQuerier
}

func NewSQLitePetRepo(db database.TxQuerier) PetRepository {
	return &sqlitePetRepo{db: db}
}

const petColumns = `id, user_id, name, description, birth_date, enabled, created_at, updated_at`

func (r *sqlitePetRepo) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (id, user_id, name, description, birth_date)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		pet.UserID,
		pet.Name,
		pet.Description,
		pet.BirthDate,
	).Scan(&pet.ID, &pet.CreatedAt, &pet.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}

	pet.Enabled = true
	return nil
}

func (r *sqlitePetRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = ? AND enabled = 1`

	pet := &models.Pet{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pet.ID, &pet.UserID, &pet.Name, &pet.Description,
		&pet.BirthDate, &pet.Enabled, &pet.CreatedAt, &pet.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	return pet, nil
}

func (r *sqlitePetRepo) ListByUser(ctx context.Context, userID string) ([]models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets
		WHERE user_id = ? AND enabled = 1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	// Boş sonuçta nil slice değil boş slice dönmek JSON'da [] üretir —
	// client null kontrolü yapmak zorunda kalmaz.
	pets := []models.Pet{}
	for rows.Next() {
		var pet models.Pet
		if err := rows.Scan(
			&pet.ID, &pet.UserID, &pet.Name, &pet.Description,
			&pet.BirthDate, &pet.Enabled, &pet.CreatedAt, &pet.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pet row: %w", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pet rows: %w", err)
	}

	return pets, nil
}

func (r *sqlitePetRepo) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = ?, description = ?, birth_date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, pet.Name, pet.Description, pet.BirthDate, pet.ID)
}

func (r *sqlitePetRepo) Disable(ctx context.Context, id string) error {
	query := `
		UPDATE pets SET enabled = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, id)
}

func (r *sqlitePetRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
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
