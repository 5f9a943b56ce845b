package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"taskboard-project/backend/board-service/services"
)

type ProjectHandler struct {
	service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	project, err := h.service.CreateProject(r.Context(), payload)
	if err != nil {
		respondServiceError(w, err, "Failed to create project due to an internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAllProjects(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve projects due to an internal server error")
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	project, err := h.service.GetProject(r.Context(), projectID)
	if err != nil {
		respondServiceError(w, err, "Failed to retrieve project due to an internal server error")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	payload, err := decodePatch(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	project, err := h.service.UpdateProject(r.Context(), projectID, payload)
	if err != nil {
		respondServiceError(w, err, "Failed to update project due to an internal server error")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := mux.Vars(r)["projectId"]

	if err := h.service.DeleteProject(r.Context(), projectID); err != nil {
		respondServiceError(w, err, "Failed to delete project due to an internal server error")
		return
	}

	respondMessage(w, "Project successfully deleted")
}
