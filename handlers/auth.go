package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/pkg/ratelimit"
	"github.com/akinalp/mascotas/services"
)

// AuthHandler, /auth endpoint'leri.
type AuthHandler struct {
	authService   services.AuthService
	signinLimiter *ratelimit.LoginRateLimiter
}

// NewAuthHandler constructor.
// signinLimiter: signin brute-force koruması. nil ise devre dışı.
func NewAuthHandler(authService services.AuthService, signinLimiter *ratelimit.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		signinLimiter: signinLimiter,
	}
}

// SignUp godoc
// POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.SignUp(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

// SignIn godoc
// POST /auth/signin
//
// IP bazlı rate limit: pencere içinde limit aşılırsa 429 + Retry-After.
// Başarılı signin sayacı sıfırlar — meşru kullanıcı bloke olmaz.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.signinLimiter != nil && !h.signinLimiter.Allow(ip) {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", h.signinLimiter.RetryAfterSeconds(ip)))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests, "too many signin attempts")
		return
	}

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.signinLimiter != nil {
		h.signinLimiter.Reset(ip)
	}

	pkg.JSON(w, http.StatusOK, models.TokenResponse{Token: token})
}

// SignOut godoc
// GET /auth/signout
//
// Bu endpoint auth middleware ARKASINDA DEĞİLDİR: iptal edilmiş bir
// token'la da signout çağrılabilmelidir (idempotent logout). Token'ın
// imzası ve kaydın varlığı service içinde kontrol edilir.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	tokenString := BearerToken(r)
	if tokenString == "" {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.authService.SignOut(r.Context(), tokenString); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// CurrentUser godoc
// GET /auth/currentUser
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), session.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// ChangePassword godoc
// POST /auth/password
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.ChangePassword(r.Context(), session.UserID, &req); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
