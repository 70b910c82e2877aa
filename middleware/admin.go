package middleware

import (
	"net/http"

	"github.com/akinalp/mascotas/handlers"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/repository"
)

// AdminMiddleware, admin rolü zorunlu kılan middleware.
// AuthMiddleware.Require'dan SONRA zincire eklenir — session context'te
// hazır olmalıdır.
//
// Rol JWT'ye gömülmez, her istekte DB'den okunur: admin yetkisi geri
// alınan kullanıcının eski token'ı admin erişimi sağlamaya devam etmez.
type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{userRepo: userRepo}
}

// Require, admin olmayan kullanıcıyı ErrForbidden (HTTP 405) ile durdurur.
func (m *AdminMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := handlers.SessionFromContext(r.Context())
		if !ok {
			pkg.Error(w, pkg.ErrUnauthorized)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), session.UserID)
		if err != nil {
			pkg.Error(w, pkg.ErrUnauthorized)
			return
		}

		if !user.Roles.Has(models.RoleAdmin) {
			pkg.Error(w, pkg.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
