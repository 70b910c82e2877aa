package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// ImageRepository, base64 görüntü deposu. İlişkisel veri olmadığı için
// SQLite yerine Redis'te tutulur; kayıtlar TTL'siz saklanır.
type ImageRepository interface {
	Save(ctx context.Context, image *models.Image) error
	Get(ctx context.Context, id string) (*models.Image, error)
}
