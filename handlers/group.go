package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// GroupHandler, /group endpoint'leri.
type GroupHandler struct {
	groupService services.GroupService
}

func NewGroupHandler(groupService services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List godoc
// GET /group — public.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, groups)
}

// Get godoc
// GET /group/{groupId} — public.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupService.Get(r.Context(), r.PathValue("groupId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, group)
}

// Create godoc
// POST /group — oluşturan sahip ve ilk üye olur.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.SaveGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.groupService.Create(r.Context(), session.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, group)
}

// Update godoc
// PUT /group/{groupId} — sadece sahibi.
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.SaveGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.groupService.Update(r.Context(), session.UserID, r.PathValue("groupId"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, group)
}

// Delete godoc
// DELETE /group/{groupId} — sadece sahibi; soft-delete.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.groupService.Delete(r.Context(), session.UserID, r.PathValue("groupId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Join godoc
// POST /group/{groupId}/join — tekrar join no-op.
func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.groupService.Join(r.Context(), session.UserID, r.PathValue("groupId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Leave godoc
// DELETE /group/{groupId}/join — üye değilsen 404.
func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.groupService.Leave(r.Context(), session.UserID, r.PathValue("groupId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Members godoc
// GET /group/{groupId}/members — public.
func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.groupService.Members(r.Context(), r.PathValue("groupId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, members)
}
