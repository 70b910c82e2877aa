package services

import (
	"context"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/repository"
)

// ProvinceService, il listesi işlemleri.
// Okumak herkese açık; eklemek login ister, silmek admin rolü ister
// (rol kontrolü middleware'dedir, service'e inmez).
type ProvinceService interface {
	List(ctx context.Context) ([]models.Province, error)
	Get(ctx context.Context, id string) (*models.Province, error)
	Create(ctx context.Context, req *models.SaveProvinceRequest) (*models.Province, error)
	Delete(ctx context.Context, id string) error
}

type provinceService struct {
	provinceRepo repository.ProvinceRepository
}

func NewProvinceService(provinceRepo repository.ProvinceRepository) ProvinceService {
	return &provinceService{provinceRepo: provinceRepo}
}

func (s *provinceService) List(ctx context.Context) ([]models.Province, error) {
	return s.provinceRepo.GetAll(ctx)
}

func (s *provinceService) Get(ctx context.Context, id string) (*models.Province, error) {
	return s.provinceRepo.GetByID(ctx, id)
}

func (s *provinceService) Create(ctx context.Context, req *models.SaveProvinceRequest) (*models.Province, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	province := &models.Province{Name: req.Name}
	if err := s.provinceRepo.Create(ctx, province); err != nil {
		return nil, err
	}

	return province, nil
}

func (s *provinceService) Delete(ctx context.Context, id string) error {
	return s.provinceRepo.Disable(ctx, id)
}
