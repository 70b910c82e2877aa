package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Message, iki kullanıcı arasındaki özel mesajdır.
// Sadece gönderen veya alan taraf okuyabilir; silme gönderene aittir.
type Message struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Content    string    `json:"content"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SendMessageRequest, POST /message body'si.
type SendMessageRequest struct {
	ToUserID string `json:"to_user_id"`
	Content  string `json:"content"`
}

// Validate: alıcı zorunlu, içerik zorunlu ≤1024.
func (r *SendMessageRequest) Validate() error {
	r.ToUserID = strings.TrimSpace(r.ToUserID)

	verr := &pkg.ValidationError{}

	if r.ToUserID == "" {
		verr.Add("to_user_id", "No puede quedar vacío.")
	}

	if strings.TrimSpace(r.Content) == "" {
		verr.Add("content", "No puede quedar vacío.")
	} else if utf8.RuneCountInString(r.Content) > 1024 {
		verr.Add("content", "Hasta 1024 caracteres solamente.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
