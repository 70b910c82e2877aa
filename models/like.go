package models

import (
	"strings"
	"time"

	"github.com/akinalp/mascotas/pkg"
)

// Like, bir kullanıcının bir evcil hayvan ilanını beğenmesidir.
// (user_id, pet_id) çifti unique'tir — aynı ilan ikinci kez beğenilemez.
// Unlike kaydı fiziksel siler; tekrar beğenme böylece mümkün olur.
type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PetID     string    `json:"pet_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeRequest, POST /like body'si.
type LikeRequest struct {
	PetID string `json:"pet_id"`
}

// Validate: pet_id zorunlu.
func (r *LikeRequest) Validate() error {
	r.PetID = strings.TrimSpace(r.PetID)

	if r.PetID == "" {
		return pkg.NewValidationError("pet_id", "No puede quedar vacío.")
	}
	return nil
}
