package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every board resource under the /api prefix.
func NewRouter(projects *ProjectHandler, stages *StageHandler, tasks *TaskHandler, subtasks *SubTaskHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/projects", projects.CreateProject).Methods(http.MethodPost)
	r.HandleFunc("/api/projects", projects.GetProjects).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{projectId}", projects.GetProject).Methods(http.MethodGet)
	r.HandleFunc("/api/projects/{projectId}", projects.UpdateProject).Methods(http.MethodPut)
	r.HandleFunc("/api/projects/{projectId}", projects.DeleteProject).Methods(http.MethodDelete)

	r.HandleFunc("/api/projects/{projectId}/stages", stages.CreateStage).Methods(http.MethodPost)
	r.HandleFunc("/api/stages/{stageId}", stages.UpdateStage).Methods(http.MethodPut)
	r.HandleFunc("/api/stages/{stageId}", stages.DeleteStage).Methods(http.MethodDelete)

	r.HandleFunc("/api/stages/{stageId}/tasks", tasks.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/tasks/{taskId}", tasks.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/api/tasks/{taskId}", tasks.DeleteTask).Methods(http.MethodDelete)

	r.HandleFunc("/api/tasks/{taskId}/subtasks", subtasks.CreateSubTask).Methods(http.MethodPost)
	r.HandleFunc("/api/subtasks/{subtaskId}", subtasks.UpdateSubTask).Methods(http.MethodPut)
	r.HandleFunc("/api/subtasks/{subtaskId}", subtasks.DeleteSubTask).Methods(http.MethodDelete)

	return r
}
