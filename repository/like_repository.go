package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// LikeRepository, ilan beğenileri.
type LikeRepository interface {
	// Create, beğeni ekler. Aynı kullanıcı aynı ilanı ikinci kez
	// beğenmeye çalışırsa *pkg.ConflictError döner.
	Create(ctx context.Context, like *models.Like) error
	GetByID(ctx context.Context, id string) (*models.Like, error)
	ListByPet(ctx context.Context, petID string) ([]models.Like, error)
	// Delete fiziksel siler — tekrar beğenme ancak böyle mümkün olur.
	Delete(ctx context.Context, id string) error
}
