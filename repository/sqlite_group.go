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

// sqliteGroupRepo, GroupRepository'nin SQLite implementasyonu.
// Üyelikler ayrı tabloda tutulur (group_members); bir grubun üyeleri
// grup satırının içine gömülmez.
type sqliteGroupRepo struct {
	db database.TxQuerier
}

func NewSQLiteGroupRepo(db database.TxQuerier) GroupRepository {
	return &sqliteGroupRepo{db: db}
}

const groupColumns = `id, owner_id, name, description, enabled, created_at, updated_at`

func (r *sqliteGroupRepo) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (id, owner_id, name, description)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		group.OwnerID,
		group.Name,
		group.Description,
	).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	group.Enabled = true
	return nil
}

func (r *sqliteGroupRepo) GetByID(ctx context.Context, id string) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = ? AND enabled = 1`

	group := &models.Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID, &group.OwnerID, &group.Name, &group.Description,
		&group.Enabled, &group.CreatedAt, &group.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

func (r *sqliteGroupRepo) GetAll(ctx context.Context) ([]models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE enabled = 1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(
			&group.ID, &group.OwnerID, &group.Name, &group.Description,
			&group.Enabled, &group.CreatedAt, &group.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group rows: %w", err)
	}

	return groups, nil
}

func (r *sqliteGroupRepo) Update(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, group.Name, group.Description, group.ID)
}

func (r *sqliteGroupRepo) Disable(ctx context.Context, id string) error {
	query := `
		UPDATE groups SET enabled = 0, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND enabled = 1`

	return r.exec(ctx, query, id)
}

func (r *sqliteGroupRepo) AddMember(ctx context.Context, groupID, userID string) error {
	// INSERT OR IGNORE → tekrar join no-op, idempotent.
	query := `INSERT OR IGNORE INTO group_members (group_id, user_id) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, groupID, userID); err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

func (r *sqliteGroupRepo) RemoveMember(ctx context.Context, groupID, userID string) error {
	query := `DELETE FROM group_members WHERE group_id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
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

func (r *sqliteGroupRepo) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	query := `
		SELECT group_id, user_id, joined_at FROM group_members
		WHERE group_id = ? ORDER BY joined_at`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	members := []models.GroupMember{}
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.GroupID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member rows: %w", err)
	}

	return members, nil
}

func (r *sqliteGroupRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
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
