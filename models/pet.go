package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Pet, bir kullanıcının evcil hayvan ilanıdır. Okuma herkese açıktır;
// yazma sadece sahibine aittir (ownership kontrolü service katmanında).
type Pet struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BirthDate   string    `json:"birthDate"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SavePetRequest, POST /pet ve PUT /pet/{id} body'si.
type SavePetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BirthDate   string `json:"birthDate"`
}

// Validate: name zorunlu ≤256, description ≤1024.
func (r *SavePetRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	verr := &pkg.ValidationError{}

	if r.Name == "" {
		verr.Add("name", "No puede quedar vacío.")
	} else if utf8.RuneCountInString(r.Name) > 256 {
		verr.Add("name", "Hasta 256 caracteres solamente.")
	}

	if utf8.RuneCountInString(r.Description) > 1024 {
		verr.Add("description", "Hasta 1024 caracteres solamente.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
