package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// ImageHandler, /image endpoint'leri. Yükleme auth ister, okuma public.
type ImageHandler struct {
	imageService services.ImageService
}

func NewImageHandler(imageService services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Save godoc
// POST /image — body {image: "data:image/..."}; yanıt {id, image}.
func (h *ImageHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	image, err := h.imageService.Save(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, image)
}

// Get godoc
// GET /image/{imageId} — public.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	image, err := h.imageService.Get(r.Context(), r.PathValue("imageId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, image)
}
