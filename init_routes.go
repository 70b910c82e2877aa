// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları:
//   - auth: geçerli oturum zorunlu
//   - authAdmin: auth + admin rolü
//
// Route sıralama kuralı: literal path'ler parametrik path'lerden önce
// tanımlanır — yoksa router "/auth/signout"taki "signout"u parametre sanır.
package main

import (
	"net/http"

	"github.com/akinalp/mascotas/middleware"
	"github.com/akinalp/mascotas/repository"
	"github.com/akinalp/mascotas/services"
)

func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
) {
	authMw := middleware.NewAuthMiddleware(authService)
	adminMw := middleware.NewAdminMiddleware(userRepo)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}
	authAdmin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(http.HandlerFunc(handler)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"mascotas"}`))
	})

	// Auth
	//
	// Signout bilinçli olarak auth middleware ARKASINDA DEĞİL:
	// iptal edilmiş token'la da çağrılabilmelidir (idempotent logout).
	mux.HandleFunc("POST /auth/signup", h.Auth.SignUp)
	mux.HandleFunc("POST /auth/signin", h.Auth.SignIn)
	mux.HandleFunc("GET /auth/signout", h.Auth.SignOut)
	mux.Handle("GET /auth/currentUser", auth(h.Auth.CurrentUser))
	mux.Handle("POST /auth/password", auth(h.Auth.ChangePassword))

	// Profile
	mux.Handle("GET /profile", auth(h.Profile.Get))
	mux.Handle("PUT /profile", auth(h.Profile.Update))

	// Pet — tekil okuma public, geri kalanı auth
	mux.Handle("GET /pet", auth(h.Pet.ListMine))
	mux.Handle("POST /pet", auth(h.Pet.Create))
	mux.HandleFunc("GET /pet/{petId}", h.Pet.Get)
	mux.Handle("PUT /pet/{petId}", auth(h.Pet.Update))
	mux.Handle("DELETE /pet/{petId}", auth(h.Pet.Delete))
	mux.HandleFunc("GET /pet/{petId}/likes", h.Like.ListByPet)

	// Group — okuma public, yazma auth (güncelleme/silme sahiplik
	// kontrolü service'te)
	mux.HandleFunc("GET /group", h.Group.List)
	mux.Handle("POST /group", auth(h.Group.Create))
	mux.HandleFunc("GET /group/{groupId}", h.Group.Get)
	mux.Handle("PUT /group/{groupId}", auth(h.Group.Update))
	mux.Handle("DELETE /group/{groupId}", auth(h.Group.Delete))
	mux.Handle("POST /group/{groupId}/join", auth(h.Group.Join))
	mux.Handle("DELETE /group/{groupId}/join", auth(h.Group.Leave))
	mux.HandleFunc("GET /group/{groupId}/members", h.Group.Members)

	// Message — hepsi auth
	mux.Handle("POST /message", auth(h.Message.Send))
	mux.Handle("GET /message", auth(h.Message.List))
	mux.Handle("GET /message/{messageId}", auth(h.Message.Get))
	mux.Handle("DELETE /message/{messageId}", auth(h.Message.Delete))

	// Like
	mux.Handle("POST /like", auth(h.Like.Like))
	mux.Handle("DELETE /like/{likeId}", auth(h.Like.Unlike))

	// Province — okuma public, ekleme auth, silme admin
	mux.HandleFunc("GET /province", h.Province.List)
	mux.HandleFunc("GET /province/{provinceId}", h.Province.Get)
	mux.Handle("POST /province", auth(h.Province.Create))
	mux.Handle("DELETE /province/{provinceId}", authAdmin(h.Province.Delete))

	// Image — yükleme auth, okuma public
	mux.Handle("POST /image", auth(h.Image.Save))
	mux.HandleFunc("GET /image/{imageId}", h.Image.Get)
}
