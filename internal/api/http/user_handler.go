package http

import (
	"net/http"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}
	respondJSON(w, http.StatusOK, actor)
}

func (h *UserHandler) ListCollectors(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	collectors, err := h.userSvc.ListCollectors(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collectors)
}
