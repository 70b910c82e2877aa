// Package services, business logic katmanını barındırır.
//
// Handler (HTTP) ile Repository (DB) arasında oturan katmandır:
// şifre hash'leme, JWT imzalama, oturum çözümleme, sahiplik kontrolleri
// hep burada yaşar. Service ASLA http.Request/Response bilmez ve ASLA
// doğrudan SQL çalıştırmaz.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/pbkdf2"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/pkg/cache"
	"github.com/akinalp/mascotas/repository"
)

// PBKDF2 parametreleri. Değiştirilirse mevcut hash'ler doğrulanamaz —
// bu sabitler şifre veritabanının parçasıdır.
const (
	pbkdf2Iterations = 10000
	pbkdf2KeyLen     = 64
)

// SessionCache, token_id → user_id eşlemesini TTL'li tutan cache tipi.
// Her ResolveSession çağrısında DB'ye inmemek için kullanılır; kayıtlar
// TTL dolunca düşer ve bir sonraki istek DB'den yeniden doğrular.
type SessionCache = cache.TTLCache[string, string]

// AuthService, kimlik işlemlerinin dışa açık API'si.
type AuthService interface {
	// SignUp, kullanıcı oluşturur ve hemen oturum açar: imzalı JWT döner.
	SignUp(ctx context.Context, req *models.SignUpRequest) (string, error)
	// SignIn, mevcut kullanıcı için yeni oturum açar.
	// Bilinmeyen login → ErrNotFound; yanlış şifre → 400 (pkg.BadRequest).
	SignIn(ctx context.Context, req *models.SignInRequest) (string, error)
	// SignOut, JWT'deki token kaydını kalıcı geçersiz kılar.
	// Kayıt yoksa ErrNotFound; zaten geçersizse no-op (idempotent).
	SignOut(ctx context.Context, tokenString string) error
	CurrentUser(ctx context.Context, userID string) (*models.CurrentUser, error)
	ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error
	// ResolveSession, bearer token'ı kimliğe çözer. Middleware kullanır.
	ResolveSession(ctx context.Context, tokenString string) (*models.Session, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	sessions  *SessionCache
	jwtSecret []byte
	salt      []byte
}

// NewAuthService constructor.
//
// sessions cache'i dışarıdan enjekte edilir: yaşam döngüsü (Close)
// main'e aittir ve testler kendi kısa TTL'li cache'lerini geçebilir.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	sessions *SessionCache,
	jwtSecret string,
	passwordSalt string,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		salt:      []byte(passwordSalt),
	}
}

func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	user := &models.User{
		Login:        req.Login,
		Name:         req.Name,
		PasswordHash: s.hashPassword(req.Password),
		Roles:        models.NewRoleSet(models.RoleUser),
	}

	// Login çakışması *ConflictError olarak aynen yukarı taşınır.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	return s.openSession(ctx, user)
}

func (s *authService) SignIn(ctx context.Context, req *models.SignInRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	// Bilinmeyen login 404 döner, 401 değil — client kontratı.
	user, err := s.userRepo.GetByLogin(ctx, req.Login)
	if err != nil {
		return "", err
	}

	// Yanlış şifre alan hatası değil, düz { "error": ... } body'sidir.
	if !s.verifyPassword(req.Password, user.PasswordHash) {
		return "", pkg.BadRequest("Password incorrecto.")
	}

	return s.openSession(ctx, user)
}

// openSession, kullanıcı için token kaydı açar, JWT imzalar ve cache'i
// peşin doldurur. Signup ve signin'in ortak kuyruğu.
func (s *authService) openSession(ctx context.Context, user *models.User) (string, error) {
	token, err := s.tokenRepo.Create(ctx, user.ID)
	if err != nil {
		return "", err
	}

	claims := &models.SessionClaims{
		UserID:  user.ID,
		Login:   user.Login,
		TokenID: token.ID,
	}

	// HS256 + exp YOK: oturum süresi JWT ile değil, tokens.valid ve
	// session cache TTL'i ile yönetilir.
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.sessions.Set(token.ID, user.ID)
	return signed, nil
}

func (s *authService) SignOut(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return err
	}

	// Kayıt hiç yoksa 404. Zaten geçersiz kılınmış kayıt ise hata değil —
	// logout'u iki kez çağırmak güvenlidir.
	if _, err := s.tokenRepo.GetByID(ctx, claims.TokenID); err != nil {
		return err
	}

	if err := s.tokenRepo.Invalidate(ctx, claims.TokenID); err != nil {
		return err
	}

	// Sıra önemli: önce DB'de geçersiz kıl, SONRA cache'ten düşür.
	// Ters sırada araya giren bir istek cache'i eski değerle yeniden
	// doldurabilir ve iptal edilmiş oturum yaşamaya devam ederdi.
	s.sessions.Evict(claims.TokenID)
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.CurrentUser, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.CurrentUser{
		ID:    user.ID,
		Name:  user.Name,
		Login: user.Login,
		Roles: user.Roles.Slice(),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *models.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	// Mevcut şifre yanlışsa hiçbir şey yazılmaz.
	if !s.verifyPassword(req.CurrentPassword, user.PasswordHash) {
		return pkg.BadRequest("El password actual es incorrecto.")
	}

	return s.userRepo.UpdatePassword(ctx, userID, s.hashPassword(req.NewPassword))
}

// ResolveSession, iki kademeli doğrulama yapar:
//
//  1. Cache hit: cache'teki user_id, JWT'deki ile eşleşmeli. Eşleşme
//     DB'siz kabul demektir — logout sonrası en fazla TTL kadar
//     bayatlık burada kabul edilmiş durumdadır.
//  2. Cache miss: DB'den token kaydı okunur; kayıt var + valid +
//     sahibi JWT'deki kullanıcı ise kabul ve cache yeniden doldurulur.
//
// Her başarısızlık modu aynı ErrUnauthorized'a iner — client'a
// hangi kademenin reddettiği sızdırılmaz.
func (s *authService) ResolveSession(ctx context.Context, tokenString string) (*models.Session, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, err
	}

	if cachedUserID, ok := s.sessions.Get(claims.TokenID); ok {
		if cachedUserID != claims.UserID {
			return nil, pkg.ErrUnauthorized
		}
		return sessionFromClaims(claims), nil
	}

	token, err := s.tokenRepo.GetByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.ErrUnauthorized
		}
		return nil, err
	}
	if !token.Valid || token.UserID != claims.UserID {
		return nil, pkg.ErrUnauthorized
	}

	s.sessions.Set(claims.TokenID, claims.UserID)
	return sessionFromClaims(claims), nil
}

// parseClaims, JWT imzasını doğrular ve claim'leri çıkarır.
// exp claim'i yok, bu yüzden süre kontrolü de yok — jwt/v5 eksik
// exp'i hata saymaz.
func (s *authService) parseClaims(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, pkg.ErrUnauthorized
	}
	if claims.UserID == "" || claims.TokenID == "" {
		return nil, pkg.ErrUnauthorized
	}
	return claims, nil
}

func sessionFromClaims(claims *models.SessionClaims) *models.Session {
	return &models.Session{
		UserID:  claims.UserID,
		Login:   claims.Login,
		TokenID: claims.TokenID,
	}
}

// hashPassword, PBKDF2-SHA256 (10000 iterasyon, 64 byte) + base64.
// Salt tüm kullanıcılar için ortaktır ve config'ten gelir.
func (s *authService) hashPassword(password string) string {
	key := pbkdf2.Key([]byte(password), s.salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// verifyPassword, sabit zamanlı karşılaştırma yapar.
func (s *authService) verifyPassword(password, hash string) bool {
	candidate := s.hashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
