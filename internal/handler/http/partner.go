package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/partner"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PartnerHandler interface {
	CreatePartner(w http.ResponseWriter, r *http.Request)
	GetPartner(w http.ResponseWriter, r *http.Request)
	GetOwnProfile(w http.ResponseWriter, r *http.Request)
	ListPartners(w http.ResponseWriter, r *http.Request)
	UpdatePartner(w http.ResponseWriter, r *http.Request)
	DeletePartner(w http.ResponseWriter, r *http.Request)
}

type partnerHandlerImpl struct {
	partnerService partner.PartnerService
}

func NewPartnerHandler(partnerService partner.PartnerService) PartnerHandler {
	return &partnerHandlerImpl{partnerService: partnerService}
}

func (h *partnerHandlerImpl) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req partner.CreatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.partnerService.CreatePartner(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Partner created", result)
}

func (h *partnerHandlerImpl) GetPartner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Partner ID is required", nil)
		return
	}

	result, err := h.partnerService.GetPartner(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *partnerHandlerImpl) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	result, err := h.partnerService.GetOwnProfile(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *partnerHandlerImpl) ListPartners(w http.ResponseWriter, r *http.Request) {
	result, err := h.partnerService.ListPartners(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *partnerHandlerImpl) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	var req partner.UpdatePartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.partnerService.UpdatePartner(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Partner updated", result)
}

func (h *partnerHandlerImpl) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Partner ID is required", nil)
		return
	}

	if err := h.partnerService.DeletePartner(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Partner deleted", nil)
}
