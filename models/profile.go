package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Profile, kullanıcının iletişim bilgilerini tutar. users ile 1:1 ilişkidir.
// Kayıt PUT /profile'ın ilk çağrısında oluşur; ondan önce GET 404 döner.
type Profile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	Picture    string    `json:"picture"`
	ProvinceID string    `json:"province"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateProfileRequest, PUT /profile body'si. Tüm alanlar opsiyoneldir;
// boş gönderilen alan boş olarak yazılır (partial update değil, replace).
type UpdateProfileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	Picture    string `json:"picture"`
	ProvinceID string `json:"province"`
}

// Validate, alan uzunluklarını kontrol eder. Name zorunludur çünkü
// profil adı users.name ile senkronize edilir.
func (r *UpdateProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	verr := &pkg.ValidationError{}

	if r.Name == "" {
		verr.Add("name", "No puede quedar vacío.")
	} else if utf8.RuneCountInString(r.Name) > 1024 {
		verr.Add("name", "Hasta 1024 caracteres solamente.")
	}

	if utf8.RuneCountInString(r.Phone) > 32 {
		verr.Add("phone", "Hasta 32 caracteres solamente.")
	}
	if utf8.RuneCountInString(r.Email) > 256 {
		verr.Add("email", "Hasta 256 caracteres solamente.")
	}
	if utf8.RuneCountInString(r.Address) > 1024 {
		verr.Add("address", "Hasta 1024 caracteres solamente.")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
