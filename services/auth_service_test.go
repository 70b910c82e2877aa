package services

import (
	"context"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
)

func TestSignUpIssuesWorkingSession(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	token, err := auth.SignUp(context.Background(), &models.SignUpRequest{
		Name:     "Juan Perez",
		Login:    "juan",
		Password: "secreto1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := auth.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "juan", session.Login)

	current, err := auth.CurrentUser(context.Background(), session.UserID)
	require.NoError(t, err)
	require.Equal(t, "juan", current.Login)
	require.Equal(t, "Juan Perez", current.Name)
	require.Equal(t, []string{"user"}, current.Roles)
}

func TestSignUpDuplicateLoginConflicts(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	signUpUser(t, auth, "juan")

	_, err := auth.SignUp(context.Background(), &models.SignUpRequest{
		Name:     "Otro Juan",
		Login:    "juan",
		Password: "secreto1",
	})

	var cerr *pkg.ConflictError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "login", cerr.Path)
}

func TestSignInUnknownLoginIsNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	_, err := auth.SignIn(context.Background(), &models.SignInRequest{
		Login:    "fantasma",
		Password: "secreto1",
	})

	// Kontrat: bilinmeyen login 401 değil 404
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSignInWrongPasswordIsBadRequest(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	signUpUser(t, auth, "juan")

	_, err := auth.SignIn(context.Background(), &models.SignInRequest{
		Login:    "juan",
		Password: "equivocada1",
	})

	// Alan hatası listesi değil, düz 400 + { "error": ... }
	require.ErrorIs(t, err, pkg.ErrBadRequest)
	require.EqualError(t, err, "Password incorrecto.")
}

func TestSessionsAreRevokedIndependently(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	signUpUser(t, auth, "juan")

	// İki cihaz AYNI ANDA giriş yapar: cache'e eşzamanlı yazma da
	// bu senaryonun parçasıdır.
	tokens := make([]string, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i], errs[i] = auth.SignIn(context.Background(),
				&models.SignInRequest{Login: "juan", Password: "secreto1"})
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	token1, token2 := tokens[0], tokens[1]
	require.NotEqual(t, token1, token2)

	require.NoError(t, auth.SignOut(context.Background(), token1))

	// token1 öldü, token2 yaşıyor — revocation oturum bazlıdır
	_, err := auth.ResolveSession(context.Background(), token1)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = auth.ResolveSession(context.Background(), token2)
	require.NoError(t, err)
}

func TestSignOutRejectsWarmCache(t *testing.T) {
	db := newTestDB(t)
	sessions := newTestSessions(t)
	auth := newTestAuth(t, db, sessions)

	_, token := signUpUser(t, auth, "juan") // cache bu noktada sıcak
	require.NoError(t, auth.SignOut(context.Background(), token))

	// Evict senkron çalıştığı için TTL beklenmeden 401 gelmeli
	_, err := auth.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestSignOutIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	_, token := signUpUser(t, auth, "juan")

	require.NoError(t, auth.SignOut(context.Background(), token))
	// Kayıt hâlâ var (valid=0) — ikinci signout hata DEĞİL
	require.NoError(t, auth.SignOut(context.Background(), token))
}

func TestSignOutUnknownTokenRecordIsNotFound(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	// Doğru imzalı ama DB'de kaydı olmayan token
	claims := &models.SessionClaims{UserID: "u1", Login: "juan", TokenID: "hic-yok"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	err = auth.SignOut(context.Background(), token)
	require.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestResolveSessionColdCacheFallsBackToDB(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	_, token := signUpUser(t, auth, "juan")

	// Yeni boş cache = process restart simülasyonu. Aynı DB, soğuk cache.
	restarted := newTestAuth(t, db, newTestSessions(t))

	session, err := restarted.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "juan", session.Login)
}

func TestResolveSessionColdCacheSeesRevocation(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	_, token := signUpUser(t, auth, "juan")
	require.NoError(t, auth.SignOut(context.Background(), token))

	// Soğuk cache'li ikinci instance da iptali görmeli (DB kaynak doğruluk)
	restarted := newTestAuth(t, db, newTestSessions(t))

	_, err := restarted.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestResolveSessionCacheOwnerMismatchRejected(t *testing.T) {
	db := newTestDB(t)
	sessions := newTestSessions(t)
	auth := newTestAuth(t, db, sessions)
	_, token := signUpUser(t, auth, "juan")

	// Cache'i kasıtlı boz: token başka kullanıcıya işaret ediyor
	session, err := auth.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	sessions.Set(session.TokenID, "baska-kullanici")

	_, err = auth.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestResolveSessionTamperedSignature(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	claims := &models.SessionClaims{UserID: "u1", Login: "juan", TokenID: "t1"}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("yanlis-secret"))
	require.NoError(t, err)

	_, err = auth.ResolveSession(context.Background(), forged)
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestResolveSessionGarbageToken(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))

	_, err := auth.ResolveSession(context.Background(), "bu.bir.jwt.degil")
	require.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestChangePasswordWrongCurrentDoesNotMutate(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	userID, _ := signUpUser(t, auth, "juan")

	err := auth.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		CurrentPassword: "equivocada1",
		NewPassword:     "nueva1234",
		VerifyPassword:  "nueva1234",
	})

	require.ErrorIs(t, err, pkg.ErrBadRequest)
	require.EqualError(t, err, "El password actual es incorrecto.")

	// Eski şifre hâlâ geçerli olmalı — hiçbir şey yazılmadı
	_, err = auth.SignIn(context.Background(), &models.SignInRequest{Login: "juan", Password: "secreto1"})
	require.NoError(t, err)
}

func TestChangePasswordSuccess(t *testing.T) {
	db := newTestDB(t)
	auth := newTestAuth(t, db, newTestSessions(t))
	userID, _ := signUpUser(t, auth, "juan")

	require.NoError(t, auth.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		CurrentPassword: "secreto1",
		NewPassword:     "nueva1234",
		VerifyPassword:  "nueva1234",
	}))

	// Eski şifre artık reddedilir
	_, err := auth.SignIn(context.Background(), &models.SignInRequest{Login: "juan", Password: "secreto1"})
	require.ErrorIs(t, err, pkg.ErrBadRequest)

	// Yenisi çalışır
	_, err = auth.SignIn(context.Background(), &models.SignInRequest{Login: "juan", Password: "nueva1234"})
	require.NoError(t, err)
}
