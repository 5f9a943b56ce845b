package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"taskboard-project/backend/board-service/services"
)

type TaskHandler struct {
	service *services.TaskService
}

func NewTaskHandler(service *services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	stageID := mux.Vars(r)["stageId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	task, err := h.service.CreateTask(r.Context(), stageID, payload)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to create task: %v", err))
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	task, err := h.service.UpdateTask(r.Context(), taskID, payload)
	if err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to update task: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]

	if err := h.service.DeleteTask(r.Context(), taskID); err != nil {
		respondServiceError(w, err, fmt.Sprintf("Failed to delete task: %v", err))
		return
	}

	respondMessage(w, "Task successfully deleted")
}
