package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JSMaruthi/Dip-Final-Year-CSE/internal/service"
)

type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type createRequestBody struct {
	Description   string `json:"description"`
	Quantity      string `json:"quantity"`
	PickupAddress string `json:"pickup_address"`
	ContactInfo   string `json:"contact_info"`
}

type adminUpdateBody struct {
	Status              string `json:"status"`
	AssignedCollectorID string `json:"assigned_collector_id"`
}

type collectorUpdateBody struct {
	Status string `json:"status"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	req, err := h.requestSvc.Create(r.Context(), actor, service.CreateRequestParams{
		Description:   body.Description,
		Quantity:      body.Quantity,
		PickupAddress: body.PickupAddress,
		ContactInfo:   body.ContactInfo,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	requests, err := h.requestSvc.List(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	requests, err := h.requestSvc.ListAll(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	var body adminUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	requestID := mux.Vars(r)["id"]
	if _, err := h.requestSvc.AdminSetStatus(r.Context(), actor, requestID, body.Status, body.AssignedCollectorID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Request updated successfully"})
}

func (h *RequestHandler) CollectorUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	var body collectorUpdateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Detail: "Invalid request body"})
		return
	}

	requestID := mux.Vars(r)["id"]
	if _, err := h.requestSvc.CollectorSetStatus(r.Context(), actor, requestID, body.Status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Request status updated successfully"})
}

func (h *RequestHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFromContext(r.Context()); !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Detail: "Not authenticated"})
		return
	}

	requestID := mux.Vars(r)["request_id"]
	transactions, err := h.requestSvc.ListTransactions(r.Context(), requestID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}
