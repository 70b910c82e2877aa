// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// main.go'daki wire-up'ı modülerleştirmek için bu dosyaya taşındı.
package main

import (
	"database/sql"

	"github.com/redis/go-redis/v9"

	"github.com/akinalp/mascotas/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
// Tek tek değişken yerine struct: fonksiyon imzaları temiz kalır ve
// yeni repository eklemek iki satırlık iş olur.
type Repositories struct {
	User     repository.UserRepository
	Token    repository.TokenRepository
	Profile  repository.ProfileRepository
	Pet      repository.PetRepository
	Group    repository.GroupRepository
	Message  repository.MessageRepository
	Like     repository.LikeRepository
	Province repository.ProvinceRepository
	Image    repository.ImageRepository
}

// initRepositories, DB ve Redis bağlantılarından tüm repository'leri oluşturur.
// sql.DB thread-safe connection pool'dur, tüm repo'lar aynı instance'ı paylaşır.
func initRepositories(conn *sql.DB, redisClient *redis.Client) *Repositories {
	return &Repositories{
		User:     repository.NewSQLiteUserRepo(conn),
		Token:    repository.NewSQLiteTokenRepo(conn),
		Profile:  repository.NewSQLiteProfileRepo(conn),
		Pet:      repository.NewSQLitePetRepo(conn),
		Group:    repository.NewSQLiteGroupRepo(conn),
		Message:  repository.NewSQLiteMessageRepo(conn),
		Like:     repository.NewSQLiteLikeRepo(conn),
		Province: repository.NewSQLiteProvinceRepo(conn),
		Image:    repository.NewRedisImageRepo(redisClient),
	}
}
