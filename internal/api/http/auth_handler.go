package http

import (
	"encoding/json"
	"net/http"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/domain"
	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	user, token, err := h.authSvc.Register(r.Context(), req.Name, req.Mobile, req.Password, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	user, token, err := h.authSvc.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	user, token, err := h.authSvc.AdminLogin(r.Context(), req.Mobile, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
