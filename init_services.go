// Package main — Service katmanı başlatma.
package main

import (
	"database/sql"

	"github.com/akinalp/mascotas/config"
	"github.com/akinalp/mascotas/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	Profile  services.ProfileService
	Pet      services.PetService
	Group    services.GroupService
	Message  services.MessageService
	Like     services.LikeService
	Province services.ProvinceService
	Image    services.ImageService
}

// initServices, repository'lerden service katmanını kurar.
//
// conn: ProfileService'in transaction'lı güncellemesi için doğrudan
// *sql.DB gerekir (WithTx).
// sessions: main'de oluşturulan session cache — yaşam döngüsü main'e ait.
func initServices(
	conn *sql.DB,
	repos *Repositories,
	sessions *services.SessionCache,
	cfg *config.Config,
) *Services {
	return &Services{
		Auth: services.NewAuthService(
			repos.User,
			repos.Token,
			sessions,
			cfg.Auth.JWTSecret,
			cfg.Auth.PasswordSalt,
		),
		Profile:  services.NewProfileService(conn, repos.Profile, repos.Province),
		Pet:      services.NewPetService(repos.Pet),
		Group:    services.NewGroupService(repos.Group),
		Message:  services.NewMessageService(repos.Message, repos.User),
		Like:     services.NewLikeService(repos.Like, repos.Pet),
		Province: services.NewProvinceService(repos.Province),
		Image:    services.NewImageService(repos.Image),
	}
}
