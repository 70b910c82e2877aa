package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// ProfileRepository, kullanıcı profil kayıtları (users ile 1:1).
type ProfileRepository interface {
	// GetByUserID, kullanıcının profilini döner; kayıt yoksa pkg.ErrNotFound.
	// Lazy-create kararı service katmanındadır, repository yaratmaz.
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}
