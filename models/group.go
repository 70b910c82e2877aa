package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/akinalp/mascotas/pkg"
)

// Group, kullanıcıların katılabildiği bir topluluktur. Sahibi dışındakiler
// sadece üye olabilir; güncelleme ve silme sahibine aittir.
type Group struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupMember, grup üyeliği kaydıdır.
type GroupMember struct {
	GroupID  string    `json:"group_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// SaveGroupRequest, POST /group ve PUT /group/{id} body'si.
type SaveGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate: name zorunlu ≤256, description ≤1024.
func (r *SaveGroupRequest) Validate() error {
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
