// Package repository, veritabanı erişim katmanını tanımlar.
//
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden
// çalışır. Interface sayesinde testlerde mock, transaction gerektiğinde
// aynı constructor'a *sql.Tx geçilerek tx-scoped repository kullanılır
// (tüm constructor'lar database.TxQuerier alır).
//
// Tüm finder'lar enabled=1 filtresi uygular: soft-disable edilmiş kayıt
// hiçbir okuma yolundan dönmez. Tek istisna token'lardır — onların yaşam
// döngüsü enabled değil valid flag'i ile yönetilir.
package repository

import (
	"context"

	"github.com/akinalp/mascotas/models"
)

// UserRepository, kullanıcı tablosu işlemleri.
type UserRepository interface {
	// Create, yeni kullanıcı ekler; id ve timestamp'ler DB tarafından
	// üretilip user üzerine yazılır. Login çakışmasında *pkg.ConflictError.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	// UpdateName, profil kaydıyla senkron tutulan görünen adı günceller.
	UpdateName(ctx context.Context, userID, name string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
