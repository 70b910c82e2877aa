package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg/cache"
	"github.com/akinalp/mascotas/repository"
)

// Test sabitleri — production config'ten bağımsız.
const (
	testJWTSecret = "test-jwt-secret"
	testSalt      = "test-password-salt"
)

// newTestDB, gerçek şema ile :memory: SQLite açar.
// Mock repository yerine gerçek DB: SQL'in kendisi de test edilmiş olur.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(":memory:", database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestSessions(t *testing.T) *SessionCache {
	t.Helper()

	c := cache.New[string, string](time.Hour, time.Minute)
	t.Cleanup(c.Close)

	return c
}

func newTestAuth(t *testing.T, db *database.DB, sessions *SessionCache) AuthService {
	t.Helper()

	return NewAuthService(
		repository.NewSQLiteUserRepo(db.Conn),
		repository.NewSQLiteTokenRepo(db.Conn),
		sessions,
		testJWTSecret,
		testSalt,
	)
}

// signUpUser, test kullanıcısı oluşturur ve (userID, jwt) döner.
func signUpUser(t *testing.T, auth AuthService, login string) (string, string) {
	t.Helper()

	token, err := auth.SignUp(context.Background(), &models.SignUpRequest{
		Name:     fmt.Sprintf("Usuario %s", login),
		Login:    login,
		Password: "secreto1",
	})
	require.NoError(t, err)

	session, err := auth.ResolveSession(context.Background(), token)
	require.NoError(t, err)

	return session.UserID, token
}
