// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır; aynı zamanda API'den
// gelen/giden verilerin şeklini de belirler. Request DTO'ları kendi
// Validate() method'larını taşır — validation kuralları ve hata mesajları
// Angular client'ın beklediği İspanyolca metinlerdir, kontratın parçasıdır.
package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Sistemdeki roller. Rol listesi kapalıdır — yeni rol eklemek şema
// değişikliği değil, sadece yeni sabit demektir.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RoleSet, bir kullanıcının rollerini küme olarak tutar.
// Rol kontrolü lineer tarama değil set-membership'tir: roles.Has(RoleAdmin).
// JSON'a sıralı string dizisi olarak serialize edilir; DB'de de aynı
// JSON dizisi TEXT kolonunda saklanır.
type RoleSet map[string]struct{}

// NewRoleSet, verilen rollerden bir küme oluşturur.
func NewRoleSet(roles ...string) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

// Has, set-membership kontrolü.
func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// Slice, rolleri alfabetik sıralı dizi olarak döner (deterministik çıktı).
func (s RoleSet) Slice() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON, RoleSet'i JSON dizisi olarak yazar: ["admin","user"].
func (s RoleSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON, JSON dizisinden RoleSet okur.
func (s *RoleSet) UnmarshalJSON(data []byte) error {
	var roles []string
	if err := json.Unmarshal(data, &roles); err != nil {
		return err
	}
	*s = NewRoleSet(roles...)
	return nil
}

// User, login yapabilen kimlik kaydıdır.
// Hiçbir zaman fiziksel silinmez — enabled=false ile soft-disable edilir.
type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // json:"-" → API response'a DAHİL ETME
	Roles        RoleSet   `json:"roles"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CurrentUser, GET /auth/currentUser yanıtıdır.
// "rol" field adı Angular client kontratıdır (çoğul değil).
type CurrentUser struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Login string   `json:"login"`
	Roles []string `json:"rol"`
}

// SignUpRequest, POST /auth/signup body'si.
type SignUpRequest struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate, alan hatalarını biriktirir ve varsa *pkg.ValidationError döner.
// Sınırlar: name ≤1024; login alfanumerik ≤64; password alfanumerik 4-256.
func (r *SignUpRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Login = strings.TrimSpace(r.Login)

	verr := &pkg.ValidationError{}

	if r.Name == "" {
		verr.Add("name", "No puede quedar vacío.")
	} else if utf8.RuneCountInString(r.Name) > 1024 {
		verr.Add("name", "Hasta 1024 caracteres solamente.")
	}

	validateLogin(verr, r.Login)
	validatePassword(verr, "password", r.Password)

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// SignInRequest, POST /auth/signin body'si.
type SignInRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate, signin alanlarını kontrol eder.
func (r *SignInRequest) Validate() error {
	r.Login = strings.TrimSpace(r.Login)

	verr := &pkg.ValidationError{}

	if r.Login == "" {
		verr.Add("login", "No puede quedar vacío.")
	} else if !isAlphanumeric(r.Login) {
		verr.Add("login", "Sólo letras y números.")
	}

	if r.Password == "" {
		verr.Add("password", "No puede quedar vacío.")
	} else if !isAlphanumeric(r.Password) {
		verr.Add("password", "Sólo letras y números.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ChangePasswordRequest, POST /auth/password body'si.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	VerifyPassword  string `json:"verifyPassword"`
}

// Validate, şifre değiştirme alanlarını kontrol eder.
// newPassword != verifyPassword da bir validation hatasıdır —
// mevcut şifrenin doğruluğu ise service katmanında kontrol edilir.
func (r *ChangePasswordRequest) Validate() error {
	verr := &pkg.ValidationError{}

	validatePassword(verr, "currentPassword", r.CurrentPassword)
	validatePassword(verr, "newPassword", r.NewPassword)
	validatePassword(verr, "verifyPassword", r.VerifyPassword)

	if r.NewPassword != r.VerifyPassword {
		verr.Add("verifyPassword", "Las contraseñas no coinciden.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// validateLogin, login alanı kurallarını uygular (signup + tests ortak).
func validateLogin(verr *pkg.ValidationError, login string) {
	switch {
	case login == "":
		verr.Add("login", "No puede quedar vacío.")
	case utf8.RuneCountInString(login) > 64:
		verr.Add("login", "Hasta 64 caracteres solamente.")
	case !isAlphanumeric(login):
		verr.Add("login", "Sólo letras y números.")
	}
}

// validatePassword, şifre alanı kurallarını uygular.
func validatePassword(verr *pkg.ValidationError, path, password string) {
	switch {
	case password == "":
		verr.Add(path, "No puede quedar vacío.")
	case utf8.RuneCountInString(password) < 4:
		verr.Add(path, "Mas de 4 caracteres.")
	case utf8.RuneCountInString(password) > 256:
		verr.Add(path, "Hasta 256 caracteres solamente.")
	case !isAlphanumeric(password):
		verr.Add(path, "Sólo letras y números.")
	}
}

// isAlphanumeric, sadece ASCII harf ve rakam içerip içermediğini kontrol eder.
func isAlphanumeric(s string) bool {
	for _, ch := range s {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9')) {
			return false
		}
	}
	return true
}
