package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// ProvinceRepository, il listesi. Seed verisi migration'dan gelir;
// runtime'da sadece admin ekleme/silme yapar.
type ProvinceRepository interface {
	GetAll(ctx context.Context) ([]models.Province, error)
	GetByID(ctx context.Context, id string) (*models.Province, error)
	// Create, isim çakışmasında *pkg.ConflictError döner.
	Create(ctx context.Context, province *models.Province) error
	Disable(ctx context.Context, id string) error
}
