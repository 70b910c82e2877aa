package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// PetRepository, evcil hayvan ilanları.
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	ListByUser(ctx context.Context, userID string) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	// Disable, ilanı soft-delete eder (enabled=0). Kayıt fiziksel silinmez.
	Disable(ctx context.Context, id string) error
}
