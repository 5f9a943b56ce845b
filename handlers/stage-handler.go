package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskboard-project/backend/board-service/services"
)

type StageHandler struct {
	service *services.StageService
}

func NewStageHandler(service *services.StageService) *StageHandler {
	return &StageHandler{service: service}
}

func (h *StageHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	stage, err := h.service.CreateStage(r.Context(), projectID, payload)
	if err != nil {
		respondServiceError(w, err, "Failed to create stage due to an internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, stage)
}

func (h *StageHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	stageID := mux.Vars(r)["stageId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	stage, err := h.service.UpdateStage(r.Context(), stageID, payload)
	if err != nil {
		respondServiceError(w, err, "Failed to update stage due to an internal server error")
		return
	}

	respondJSON(w, http.StatusOK, stage)
}

func (h *StageHandler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	stageID := mux.Vars(r)["stageId"]

	if err := h.service.DeleteStage(r.Context(), stageID); err != nil {
		respondServiceError(w, err, "Failed to delete stage due to an internal server error")
		return
	}

	respondMessage(w, "Stage successfully deleted")
}
