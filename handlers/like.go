package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// LikeHandler, beğeni endpoint'leri.
type LikeHandler struct {
	likeService services.LikeService
}

func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like godoc
// POST /like — aynı ilanı ikinci kez beğenmek conflict döner.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	like, err := h.likeService.Like(r.Context(), session.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, like)
}

// ListByPet godoc
// GET /pet/{petId}/likes — public.
func (h *LikeHandler) ListByPet(w http.ResponseWriter, r *http.Request) {
	likes, err := h.likeService.ListByPet(r.Context(), r.PathValue("petId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, likes)
}

// Unlike godoc
// DELETE /like/{likeId} — sadece beğeninin sahibi.
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.likeService.Unlike(r.Context(), session.UserID, r.PathValue("likeId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
