package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Bu dosya, API response kontratını tek noktada toplar.
//
// Hata body formatları (Angular client bu şekilleri bekler):
//
//	{ "error": "mesaj" }                                → genel hatalar
//	{ "messages": [ {"path": "...", "message": "..."} ] } → validation/conflict
//
// Her hata yanıtı ayrıca X-Status-Reason header'ı taşır — makine tarafından
// okunabilir kısa açıklama.

// HTTP status sabitleri — 405 Forbidden mapping'i kasıtlıdır (bkz. errors.go).
const (
	statusValidation = http.StatusBadRequest
	statusForbidden  = http.StatusMethodNotAllowed
)

// JSON, başarılı bir yanıtı olduğu gibi serialize eder.
// Envelope ({success, data}) YOKTUR — client düz entity bekler.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Error, bir domain error'ını HTTP yanıtına çevirir.
//
// Sıralama önemli: önce typed error'lar (errors.As), sonra sentinel'ler
// (errors.Is). Wrap edilmiş error'lar da doğru match eder.
func Error(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeMessages(w, "Validation failed", verr.Messages)
		return
	}

	var cerr *ConflictError
	if errors.As(err, &cerr) {
		writeConflict(w, cerr.Path)
		return
	}

	status, reason := mapErrorToStatus(err)
	writeError(w, status, reason, err.Error())
}

// ErrorWithMessage, sentinel'e bağlı kalmadan özel mesajlı hata yanıtı gönderir.
// Middleware'lar "authorization header required" gibi mesajlar için kullanır.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	writeError(w, status, message, message)
}

// writeError, { "error": ... } formatında hata body'si yazar.
func writeError(w http.ResponseWriter, status int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Status-Reason", reason)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}

// writeMessages, { "messages": [...] } formatında alan hatası listesi yazar.
func writeMessages(w http.ResponseWriter, reason string, messages []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Status-Reason", reason)
	w.WriteHeader(statusValidation)

	body := map[string][]FieldError{"messages": messages}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}

// writeConflict, unique constraint ihlalini tek alanlık mesaj listesi olarak yazar.
func writeConflict(w http.ResponseWriter, path string) {
	writeMessages(w, "Unique constraint", []FieldError{
		{Path: path, Message: "Este registro ya existe."},
	})
}

// mapErrorToStatus, sentinel error'ları HTTP status code'larına eşler.
func mapErrorToStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return statusForbidden, "Not allowed"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "Bad request"
	default:
		return http.StatusInternalServerError, "Unknown error"
	}
}
