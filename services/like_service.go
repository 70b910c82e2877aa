package services

import (
	"context"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// LikeService, ilan beğenileri.
type LikeService interface {
	// Like, beğeni ekler. Aynı ilan ikinci kez beğenilirse *ConflictError.
	Like(ctx context.Context, userID string, req *models.LikeRequest) (*models.Like, error)
	ListByPet(ctx context.Context, petID string) ([]models.Like, error)
	// Unlike, beğeniyi kaldırır. Sadece beğeninin sahibi kaldırabilir.
	Unlike(ctx context.Context, userID, likeID string) error
}

type likeService struct {
	likeRepo repository.LikeRepository
	petRepo  repository.PetRepository
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	petRepo repository.PetRepository,
) LikeService {
	return &likeService{likeRepo: likeRepo, petRepo: petRepo}
}

func (s *likeService) Like(ctx context.Context, userID string, req *models.LikeRequest) (*models.Like, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// İlan var olmalı (disabled ilan da beğenilemez).
	if _, err := s.petRepo.GetByID(ctx, req.PetID); err != nil {
		return nil, err
	}

	like := &models.Like{UserID: userID, PetID: req.PetID}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}

	return like, nil
}

func (s *likeService) ListByPet(ctx context.Context, petID string) ([]models.Like, error) {
	if _, err := s.petRepo.GetByID(ctx, petID); err != nil {
		return nil, err
	}
	return s.likeRepo.ListByPet(ctx, petID)
}

func (s *likeService) Unlike(ctx context.Context, userID, likeID string) error {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return err
	}
	if like.UserID != userID {
		return pkg.ErrForbidden
	}

	return s.likeRepo.Delete(ctx, likeID)
}
