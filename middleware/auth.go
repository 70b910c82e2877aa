// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware zincir şeklinde çalışır: Auth → Admin → Handler.
// Go'da middleware bir fonksiyondur: func(next http.Handler) http.Handler.
// Middleware kendi işini yapar, sorun yoksa next'i çağırır; hata varsa
// next ÇAĞIRILMAZ, request orada durur.
package middleware

import (
	"context"
	"net/http"

	"github.com/akinalp/mascotas/handlers"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// AuthMiddleware, bearer token'ı oturuma çözen middleware.
type AuthMiddleware struct {
	authService services.AuthService
}

func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, geçerli oturum zorunlu kılar.
//
// 1. Authorization header'ından token al
// 2. AuthService.ResolveSession ile çöz (cache → DB sıralı doğrulama)
// 3. Çözülen *models.Session'ı context'e koy, next'i çağır
// 4. Her başarısızlık → 401, next çağrılmaz
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := handlers.BearerToken(r)
		if tokenString == "" {
			pkg.Error(w, pkg.ErrUnauthorized)
			return
		}

		session, err := m.authService.ResolveSession(r.Context(), tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), handlers.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
