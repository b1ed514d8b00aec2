package http

import (
	"encoding/json"
	"net/http"

	"github.com/crewpay/crewpay-backend-go/internal/domain/level"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LevelHandler interface {
	CreateLevel(w http.ResponseWriter, r *http.Request)
	GetLevel(w http.ResponseWriter, r *http.Request)
	ListLevels(w http.ResponseWriter, r *http.Request)
	UpdateLevel(w http.ResponseWriter, r *http.Request)
	DeleteLevel(w http.ResponseWriter, r *http.Request)
}

type levelHandlerImpl struct {
	levelService level.LevelService
}

func NewLevelHandler(levelService level.LevelService) LevelHandler {
	return &levelHandlerImpl{levelService: levelService}
}

func (h *levelHandlerImpl) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var req level.CreateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.levelService.CreateLevel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Level created", result)
}

func (h *levelHandlerImpl) GetLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Level ID is required", nil)
		return
	}

	result, err := h.levelService.GetLevel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *levelHandlerImpl) ListLevels(w http.ResponseWriter, r *http.Request) {
	result, err := h.levelService.ListLevels(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *levelHandlerImpl) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	var req level.UpdateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.levelService.UpdateLevel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Level updated", result)
}

func (h *levelHandlerImpl) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Level ID is required", nil)
		return
	}

	if err := h.levelService.DeleteLevel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Level deleted", nil)
}
