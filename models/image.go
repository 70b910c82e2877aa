package models

import (
	"strings"

	"github.com/akinalp/mascotas/pkg"
)

// Image, Redis'te saklanan base64 data-URI görüntüsüdür.
// İlişkisel veri değildir; profil/pet kayıtları sadece id'sini referans eder.
type Image struct {
	ID    string `json:"id"`
	Image string `json:"image"`
}

// SaveImageRequest, POST /image body'si. Image alanı
// "data:image/..." ile başlayan bir data-URI olmalıdır.
type SaveImageRequest struct {
	Image string `json:"image"`
}

// Validate: boş olamaz ve data:image/ prefix'i zorunludur.
// İçeriğin gerçekten geçerli base64 olup olmadığı kontrol edilmez —
// client ne yüklediyse onu geri alır, sunucu decode etmez.
func (r *SaveImageRequest) Validate() error {
	if strings.TrimSpace(r.Image) == "" {
		return pkg.NewValidationError("image", "No puede quedar vacío.")
	}
	if !strings.HasPrefix(r.Image, "data:image/") {
		return pkg.NewValidationError("image", "Debe ser una imagen en formato data-uri.")
	}
	return nil
}
