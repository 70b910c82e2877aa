package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken, her başarılı signin'de oluşturulan sunucu taraflı oturum
// kaydıdır. JWT'nin kendisi expire olmaz — oturumun geçerliliği bu kaydın
// valid flag'i ile belirlenir. Logout token'ı SİLMEZ, valid=0 yapar;
// kayıt audit izi olarak kalır.
type SessionToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Valid     bool      `json:"valid"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionClaims, JWT payload'ı. Alan adları client kontratıdır:
// "id" → kullanıcı, "token_id" → sunucudaki oturum kaydı.
// Exp claim'i bilinçli olarak YOK — iptal JWT üzerinden değil,
// tokens.valid üzerinden yapılır.
type SessionClaims struct {
	UserID  string `json:"id"`
	Login   string `json:"login"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// Session, middleware'in çözümleyip context'e koyduğu kimliktir.
// Handler'lar JWT detayı bilmez; sadece bu struct'ı okur.
type Session struct {
	UserID  string
	Login   string
	TokenID string
}

// TokenResponse, signin/signup yanıtı: {"token": "<jwt>"}.
type TokenResponse struct {
	Token string `json:"token"`
}
