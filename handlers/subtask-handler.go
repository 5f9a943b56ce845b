package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"taskboard-project/backend/board-service/services"
)

type SubTaskHandler struct {
	service *services.SubTaskService
}

func NewSubTaskHandler(service *services.SubTaskService) *SubTaskHandler {
	return &SubTaskHandler{service: service}
}

func (h *SubTaskHandler) CreateSubTask(w http.ResponseWriter, r *http.Request) {
	parentTaskID := mux.Vars(r)["taskId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	subtask, err := h.service.CreateSubTask(r.Context(), parentTaskID, payload)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to create subtask: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, subtask)
}

func (h *SubTaskHandler) UpdateSubTask(w http.ResponseWriter, r *http.Request) {
	subtaskID := mux.Vars(r)["subtaskId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	subtask, err := h.service.UpdateSubTask(r.Context(), subtaskID, payload)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to update subtask: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, subtask)
}

func (h *SubTaskHandler) DeleteSubTask(w http.ResponseWriter, r *http.Request) {
	subtaskID := mux.Vars(r)["subtaskId"]

	if err := h.service.DeleteSubTask(r.Context(), subtaskID); err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to delete subtask: %v", err))
		return
	}

	respondMessage(w, "SubTask successfully deleted")
}
