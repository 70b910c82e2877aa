// Package main — Handler katmanı başlatma.
package main

import (
	"github.com/akinalp/mascotas/handlers"
	"github.com/akinalp/mascotas/pkg/ratelimit"
)

// Handlers, tüm HTTP handler instance'larını tutan container struct.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Pet      *handlers.PetHandler
	Group    *handlers.GroupHandler
	Message  *handlers.MessageHandler
	Like     *handlers.LikeHandler
	Province *handlers.ProvinceHandler
	Image    *handlers.ImageHandler
}

// initHandlers, service'lerden handler katmanını kurar.
func initHandlers(svcs *Services, signinLimiter *ratelimit.LoginRateLimiter) *Handlers {
	return &Handlers{
		Auth:     handlers.NewAuthHandler(svcs.Auth, signinLimiter),
		Profile:  handlers.NewProfileHandler(svcs.Profile),
		Pet:      handlers.NewPetHandler(svcs.Pet),
		Group:    handlers.NewGroupHandler(svcs.Group),
		Message:  handlers.NewMessageHandler(svcs.Message),
		Like:     handlers.NewLikeHandler(svcs.Like),
		Province: handlers.NewProvinceHandler(svcs.Province),
		Image:    handlers.NewImageHandler(svcs.Image),
	}
}
