// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi ince (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/akinalp/mascotas/models"
)

// contextKey, context.WithValue çakışmalarını önleyen private tip.
// string kullansaydık başka bir paket aynı key'i ezebilirdi.
type contextKey string

// SessionContextKey, auth middleware'in çözümlenmiş oturumu koyduğu key.
const SessionContextKey contextKey = "session"

// SessionFromContext, middleware'in koyduğu oturumu okur.
// Auth middleware arkasındaki handler'larda ok her zaman true'dur;
// yine de kontrol edilir — route yanlış bağlanırsa panic yerine 401.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*models.Session)
	return session, ok
}

// BearerToken, Authorization header'ından raw JWT string'ini çıkarır.
// Şema karşılaştırması case-insensitive'dir: Angular client "bearer"
// gönderir, diğer client'lar "Bearer" — ikisi de kabul edilir.
// Header yoksa veya şema bearer değilse boş string döner.
func BearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
