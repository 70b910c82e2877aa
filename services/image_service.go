package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/repository"
)

// ImageService, base64 görüntü yükleme/okuma.
// Id'ler UUID'dir — SQLite'ın randomblob id'lerinden farklı olarak
// burada id üretimi uygulama tarafındadır (Redis id üretmez).
type ImageService interface {
	Save(ctx context.Context, req *models.SaveImageRequest) (*models.Image, error)
	Get(ctx context.Context, id string) (*models.Image, error)
}

type imageService struct {
	imageRepo repository.ImageRepository
}

func NewImageService(imageRepo repository.ImageRepository) ImageService {
	return &imageService{imageRepo: imageRepo}
}

func (s *imageService) Save(ctx context.Context, req *models.SaveImageRequest) (*models.Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	image := &models.Image{
		ID:    uuid.NewString(),
		Image: req.Image,
	}
	if err := s.imageRepo.Save(ctx, image); err != nil {
		return nil, err
	}

	return image, nil
}

func (s *imageService) Get(ctx context.Context, id string) (*models.Image, error) {
	return s.imageRepo.Get(ctx, id)
}
