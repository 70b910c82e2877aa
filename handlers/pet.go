package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// PetHandler, /pet endpoint'leri.
// Tekil okuma (GET /pet/{petId}) herkese açıktır; geri kalanı auth ister.
type PetHandler struct {
	petService services.PetService
}

func NewPetHandler(petService services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// ListMine godoc
// GET /pet — kendi ilanların.
func (h *PetHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	pets, err := h.petService.ListByUser(r.Context(), session.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, pets)
}

// Get godoc
// GET /pet/{petId} — public.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petService.Get(r.Context(), r.PathValue("petId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, pet)
}

// Create godoc
// POST /pet
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.SavePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.petService.Create(r.Context(), session.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, pet)
}

// Update godoc
// PUT /pet/{petId} — sadece sahibi.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.SavePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pet, err := h.petService.Update(r.Context(), session.UserID, r.PathValue("petId"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, pet)
}

// Delete godoc
// DELETE /pet/{petId} — sadece sahibi; soft-delete.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.petService.Delete(r.Context(), session.UserID, r.PathValue("petId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
