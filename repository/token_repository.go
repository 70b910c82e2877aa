package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// TokenRepository, oturum token kayıtları.
//
// Token'lar hiçbir zaman silinmez: logout Invalidate ile valid=0 yapar.
// GetByID valid filtresi UYGULAMAZ — signout, iptal edilmiş token'ı da
// bulabilmelidir (yoksa idempotent logout 404'e dönüşür).
type TokenRepository interface {
	// Create, kullanıcı için yeni geçerli oturum kaydı açar.
	Create(ctx context.Context, userID string) (*models.SessionToken, error)
	GetByID(ctx context.Context, id string) (*models.SessionToken, error)
	// Invalidate, token'ı kalıcı olarak geçersiz kılar.
	Invalidate(ctx context.Context, id string) error
}
