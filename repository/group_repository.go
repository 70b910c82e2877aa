package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// GroupRepository, topluluklar ve üyelikleri.
type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetAll(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Disable(ctx context.Context, id string) error

	// AddMember idempotenttir: zaten üye olan için no-op.
	AddMember(ctx context.Context, groupID, userID string) error
	// RemoveMember, üyelik yoksa pkg.ErrNotFound döner.
	RemoveMember(ctx context.Context, groupID, userID string) error
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
}
