package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/handlers"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg/cache"
	"github.com/akinalp/mascotas/repository"
	"github.com/akinalp/mascotas/services"
)

func newTestAuthService(t *testing.T) (*database.DB, services.AuthService) {
	t.Helper()

	db, err := database.New(":memory:", database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := cache.New[string, string](time.Hour, time.Minute)
	t.Cleanup(sessions.Close)

	auth := services.NewAuthService(
		repository.NewSQLiteUserRepo(db.Conn),
		repository.NewSQLiteTokenRepo(db.Conn),
		sessions,
		"test-jwt-secret",
		"test-salt",
	)
	return db, auth
}

func signUp(t *testing.T, auth services.AuthService, login string) string {
	t.Helper()

	token, err := auth.SignUp(context.Background(), &models.SignUpRequest{
		Name:     "Test",
		Login:    login,
		Password: "secreto1",
	})
	require.NoError(t, err)
	return token
}

// echoSession, context'teki oturumu doğrulayıp 200 dönen test handler'ı.
func echoSession(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := handlers.SessionFromContext(r.Context())
		require.True(t, ok)
		require.NotEmpty(t, session.UserID)
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRequireValidToken(t *testing.T) {
	_, auth := newTestAuthService(t)
	token := signUp(t, auth, "juan")

	var called bool
	handler := NewAuthMiddleware(auth).Require(echoSession(t, &called))

	r := httptest.NewRequest(http.MethodGet, "/auth/currentUser", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.True(t, called)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequireMissingHeader(t *testing.T) {
	_, auth := newTestAuthService(t)

	var called bool
	handler := NewAuthMiddleware(auth).Require(echoSession(t, &called))

	r := httptest.NewRequest(http.MethodGet, "/auth/currentUser", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequireRevokedToken(t *testing.T) {
	_, auth := newTestAuthService(t)
	token := signUp(t, auth, "juan")
	require.NoError(t, auth.SignOut(context.Background(), token))

	var called bool
	handler := NewAuthMiddleware(auth).Require(echoSession(t, &called))

	r := httptest.NewRequest(http.MethodGet, "/auth/currentUser", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.False(t, called)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequireRejectsRegularUser(t *testing.T) {
	db, auth := newTestAuthService(t)
	token := signUp(t, auth, "juan")

	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	authMw := NewAuthMiddleware(auth)
	adminMw := NewAdminMiddleware(userRepo)

	var called bool
	handler := authMw.Require(adminMw.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	r := httptest.NewRequest(http.MethodDelete, "/province/x", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.False(t, called)
	// Kontrat: yetki reddi 403 değil 405
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAdminRequireAllowsAdmin(t *testing.T) {
	db, auth := newTestAuthService(t)
	token := signUp(t, auth, "admin1")

	// Role'ü doğrudan DB'de yükselt — admin atama endpoint'i yok
	_, err := db.Conn.Exec(`UPDATE users SET roles = '["admin","user"]' WHERE login = 'admin1'`)
	require.NoError(t, err)

	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	handler := NewAuthMiddleware(auth).Require(
		NewAdminMiddleware(userRepo).Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	r := httptest.NewRequest(http.MethodDelete, "/province/x", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
}
