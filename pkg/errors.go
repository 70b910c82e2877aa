// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir (string taşıyan struct'lar).
// errors.New() ile sabit error değişkenleri tanımlarız.
// Böylece error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
//
// Validation ve unique-constraint hataları ise sentinel yerine typed error
// olarak tanımlıdır — alan bazlı detay (path + message listesi) taşımaları
// gerektiği için. errors.As() ile yakalanırlar.
package pkg

import "errors"

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
//
// Dikkat: ErrForbidden 403 değil 405 olarak map'lenir — Angular client
// bu status'u bekliyor, kontratın parçası.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal error")
)

// BadRequest, özel mesajlı 400 hatası üretir.
// errors.Is(err, ErrBadRequest) eşleşir; HTTP karşılığı
// 400 + body { "error": mesaj } olur (alan listesi YOK).
// Yanlış şifre gibi tek mesajlık client hataları için kullanılır.
func BadRequest(message string) error {
	return &messageError{sentinel: ErrBadRequest, message: message}
}

// messageError, bir sentinel'e zincirlenmiş özel mesaj taşır.
// Error() sadece mesajı döner — response body'ye olduğu gibi yazılır.
type messageError struct {
	sentinel error
	message  string
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.sentinel }

// FieldError, tek bir alan için validation hatasıdır.
// Wire format birebir API kontratıdır: { "path": "...", "message": "..." }.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError, bir veya daha fazla alan hatasını taşır.
// HTTP karşılığı: 400 + X-Status-Reason: "Validation failed" +
// body { "messages": [ {path, message}, ... ] }.
type ValidationError struct {
	Messages []FieldError
}

// Error, error interface'ini karşılar.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Messages[0].Path + ": " + e.Messages[0].Message
}

// NewValidationError, tek alanlık validation hatası için kısayol.
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{Messages: []FieldError{{Path: path, Message: message}}}
}

// Add, hata listesine yeni bir alan ekler.
// Validate() fonksiyonlarında hataları biriktirmek için kullanılır.
func (e *ValidationError) Add(path, message string) {
	e.Messages = append(e.Messages, FieldError{Path: path, Message: message})
}

// HasErrors, en az bir alan hatası birikmiş mi kontrol eder.
func (e *ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

// ConflictError, UNIQUE constraint ihlalini temsil eder (ör. login zaten var).
// HTTP karşılığı: 400 + X-Status-Reason: "Unique constraint" +
// body { "messages": [ {path, "Este registro ya existe."} ] }.
//
// Mesaj İspanyolca'dır — Angular client bu metni olduğu gibi gösterir.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return "unique constraint: " + e.Path
}

// NewConflictError, verilen alan için conflict hatası oluşturur.
func NewConflictError(path string) *ConflictError {
	return &ConflictError{Path: path}
}
