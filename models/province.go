package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Province, profil formundaki il dropdown'ının veri kaynağıdır.
// Liste migration ile seed edilir; okunması herkese açıktır.
type Province struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveProvinceRequest, POST /province body'si.
type SaveProvinceRequest struct {
	Name string `json:"name"`
}

// Validate: name zorunlu ≤256.
func (r *SaveProvinceRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	verr := &pkg.ValidationError{}

	if r.Name == "" {
		verr.Add("name", "No puede quedar vacío.")
	} else if utf8.RuneCountInString(r.Name) > 256 {
		verr.Add("name", "Hasta 256 caracteres solamente.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
