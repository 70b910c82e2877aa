package services

import (
	"context"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// PetService, evcil hayvan ilanları.
// Okuma herkese açık; yazma işlemleri sahiplik ister. Sahip olmayan
// birinin yazma denemesi ErrForbidden döner (HTTP'de 405'e map'lenir).
type PetService interface {
	Create(ctx context.Context, userID string, req *models.SavePetRequest) (*models.Pet, error)
	Get(ctx context.Context, id string) (*models.Pet, error)
	ListByUser(ctx context.Context, userID string) ([]models.Pet, error)
	Update(ctx context.Context, userID, petID string, req *models.SavePetRequest) (*models.Pet, error)
	Delete(ctx context.Context, userID, petID string) error
}

type petService struct {
	petRepo repository.PetRepository
}

func NewPetService(petRepo repository.PetRepository) PetService {
	return &petService{petRepo: petRepo}
}

func (s *petService) Create(ctx context.Context, userID string, req *models.SavePetRequest) (*models.Pet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pet := &models.Pet{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		BirthDate:   req.BirthDate,
	}
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *petService) Get(ctx context.Context, id string) (*models.Pet, error) {
	return s.petRepo.GetByID(ctx, id)
}

func (s *petService) ListByUser(ctx context.Context, userID string) ([]models.Pet, error) {
	return s.petRepo.ListByUser(ctx, userID)
}

func (s *petService) Update(ctx context.Context, userID, petID string, req *models.SavePetRequest) (*models.Pet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pet, err := s.ownedPet(ctx, userID, petID)
	if err != nil {
		return nil, err
	}

	pet.Name = req.Name
	pet.Description = req.Description
	pet.BirthDate = req.BirthDate

	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *petService) Delete(ctx context.Context, userID, petID string) error {
	if _, err := s.ownedPet(ctx, userID, petID); err != nil {
		return err
	}
	return s.petRepo.Disable(ctx, petID)
}

// ownedPet, ilanı yükler ve sahiplik doğrular.
// Var olmayan ilan 404; başkasının ilanı ErrForbidden.
func (s *petService) ownedPet(ctx context.Context, userID, petID string) (*models.Pet, error) {
	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.UserID != userID {
		return nil, pkg.ErrForbidden
	}
	return pet, nil
}
