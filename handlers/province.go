package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// ProvinceHandler, /province endpoint'leri.
// Okuma public, ekleme auth, silme admin (route zincirinde bağlanır).
type ProvinceHandler struct {
	provinceService services.ProvinceService
}

func NewProvinceHandler(provinceService services.ProvinceService) *ProvinceHandler {
	return &ProvinceHandler{provinceService: provinceService}
}

// List godoc
// GET /province — public.
func (h *ProvinceHandler) List(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.provinceService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, provinces)
}

// Get godoc
// GET /province/{provinceId} — public.
func (h *ProvinceHandler) Get(w http.ResponseWriter, r *http.Request) {
	province, err := h.provinceService.Get(r.Context(), r.PathValue("provinceId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, province)
}

// Create godoc
// POST /province — login yeterli; isim çakışması conflict döner.
func (h *ProvinceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProvinceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	province, err := h.provinceService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, province)
}

// Delete godoc
// DELETE /province/{provinceId} — sadece admin; soft-delete.
func (h *ProvinceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.provinceService.Delete(r.Context(), r.PathValue("provinceId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
