package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/crewpay/crewpay-backend-go/internal/domain/partnerpayment"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PartnerPaymentHandler interface {
	CreatePartnerPayment(w http.ResponseWriter, r *http.Request)
	GetPartnerPayment(w http.ResponseWriter, r *http.Request)
	ListPartnerPayments(w http.ResponseWriter, r *http.Request)
	UpdatePartnerPayment(w http.ResponseWriter, r *http.Request)
	DeletePartnerPayment(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type partnerPaymentHandlerImpl struct {
	partnerPaymentService partnerpayment.PartnerPaymentService
}

func NewPartnerPaymentHandler(partnerPaymentService partnerpayment.PartnerPaymentService) PartnerPaymentHandler {
	return &partnerPaymentHandlerImpl{partnerPaymentService: partnerPaymentService}
}

func (h *partnerPaymentHandlerImpl) CreatePartnerPayment(w http.ResponseWriter, r *http.Request) {
	var req partnerpayment.CreatePartnerPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.partnerPaymentService.CreatePartnerPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Partner payment created", result)
}

func (h *partnerPaymentHandlerImpl) GetPartnerPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Partner payment ID is required", nil)
		return
	}

	result, err := h.partnerPaymentService.GetPartnerPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *partnerPaymentHandlerImpl) ListPartnerPayments(w http.ResponseWriter, r *http.Request) {
	var filter partnerpayment.PartnerPaymentFilter

	if s := r.URL.Query().Get("status"); s != "" && partnerpayment.ValidStatus(s) {
		status := partnerpayment.Status(s)
		filter.Status = &status
	}
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = l
	}

	result, err := h.partnerPaymentService.ListPartnerPayments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.Total + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Payments, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: totalPages,
	})
}

func (h *partnerPaymentHandlerImpl) UpdatePartnerPayment(w http.ResponseWriter, r *http.Request) {
	var req partnerpayment.UpdatePartnerPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.partnerPaymentService.UpdatePartnerPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Partner payment updated", result)
}

func (h *partnerPaymentHandlerImpl) DeletePartnerPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Partner payment ID is required", nil)
		return
	}

	if err := h.partnerPaymentService.DeletePartnerPayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Partner payment deleted", nil)
}

func (h *partnerPaymentHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req partnerpayment.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.partnerPaymentService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Partner payment marked as paid", result)
}
