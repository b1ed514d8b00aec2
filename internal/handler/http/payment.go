package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/crewpay/crewpay-backend-go/internal/domain/payment"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	BatchCreatePayments(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	BatchMarkPaid(w http.ResponseWriter, r *http.Request)
	ApprovePayment(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{paymentService: paymentService}
}

func (h *paymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.paymentService.CreatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment created", result)
}

func (h *paymentHandlerImpl) BatchCreatePayments(w http.ResponseWriter, r *http.Request) {
	var req payment.BatchCreatePaymentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.paymentService.BatchCreatePayments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payments created", result)
}

func (h *paymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	result, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *paymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	var filter payment.PaymentFilter

	if s := r.URL.Query().Get("status"); s != "" && payment.ValidStatus(s) {
		status := payment.Status(s)
		filter.Status = &status
	}
	if e := r.URL.Query().Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if p := r.URL.Query().Get("partner_id"); p != "" {
		filter.PartnerID = &p
	}
	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, ok := validator.IsValidDate(s); ok {
			filter.StartDate = &t
		}
	}
	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, ok := validator.IsValidDate(s); ok {
			filter.EndDate = &t
		}
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		filter.Month = &m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		filter.Year = &y
	}
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		filter.Page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		filter.Limit = l
	}

	result, total, err := h.paymentService.ListPayments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

func (h *paymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.paymentService.UpdatePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment updated", result)
}

func (h *paymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment deleted", nil)
}

func (h *paymentHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payment.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.paymentService.MarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment marked as paid", result)
}

func (h *paymentHandlerImpl) BatchMarkPaid(w http.ResponseWriter, r *http.Request) {
	var req payment.BatchMarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.paymentService.BatchMarkPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payments marked as paid", result)
}

func (h *paymentHandlerImpl) ApprovePayment(w http.ResponseWriter, r *http.Request) {
	var req payment.ApprovePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.paymentService.ApprovePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment approval resolved", result)
}
