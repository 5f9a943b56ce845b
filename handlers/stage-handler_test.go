package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"taskboard-project/backend/board-service/repositories"
)

func TestCreateStageAssignsSiblingOrders(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "Ordered")
	projectID := project["id"].(string)

	for i, name := range []string{"Stage One", "Stage Two", "Stage Three"} {
		stage := createStage(t, router, projectID, name)
		if stage["order"] != float64(i) {
			t.Errorf("stage %q order = %v, want %d", name, stage["order"], i)
		}
		if stage["project_id"] != projectID {
			t.Errorf("stage %q project_id = %v", name, stage["project_id"])
		}
	}
}

func TestCreateStageOrdersAreScopedPerProject(t *testing.T) {
	router, _ := newTestRouter()
	first := createProject(t, router, "A")
	second := createProject(t, router, "B")

	createStage(t, router, first["id"].(string), "A1")
	stage := createStage(t, router, second["id"].(string), "B1")
	if stage["order"] != float64(0) {
		t.Errorf("order = %v, want 0 (scopes must not bleed across projects)", stage["order"])
	}
}

func TestCreateStageMissingProject(t *testing.T) {
	router, _ := newTestRouter()
	rec := doJSON(t, router, http.MethodPost, "/api/projects/ghost/stages", map[string]interface{}{"name": "S"})
	wantError(t, rec, http.StatusNotFound, "Project not found")
}

func TestCreateStageMissingName(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")

	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+project["id"].(string)+"/stages", map[string]interface{}{})
	wantError(t, rec, http.StatusBadRequest, "Stage name (name) is required")
}

func TestUpdateStageNameAndOrder(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "Old Name")
	stageID := stage["id"].(string)

	rec := doJSON(t, router, http.MethodPut, "/api/stages/"+stageID, map[string]interface{}{
		"name":  "New Name",
		"order": 10,
	})
	wantStatus(t, rec, http.StatusOK)

	body := decodeObject(t, rec)
	if body["name"] != "New Name" || body["order"] != float64(10) {
		t.Errorf("updated stage = %v/%v, want New Name/10", body["name"], body["order"])
	}
	if _, ok := body["tasks"]; !ok {
		t.Error("stage update response must nest tasks")
	}
}

func TestUpdateStageRejectsBadOrder(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")
	stageID := stage["id"].(string)

	rec := doJSON(t, router, http.MethodPut, "/api/stages/"+stageID, map[string]interface{}{"order": "abc"})
	wantError(t, rec, http.StatusBadRequest, "Order must be an integer")
}

func TestUpdateStageRejectsNullOrder(t *testing.T) {
	router, store := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")
	stageID := stage["id"].(string)

	rec := doJSON(t, router, http.MethodPut, "/api/stages/"+stageID, map[string]interface{}{"order": 3})
	wantStatus(t, rec, http.StatusOK)

	// null must not be silently stored as order 0.
	rec = doRaw(t, router, http.MethodPut, "/api/stages/"+stageID, `{"order": null}`)
	wantError(t, rec, http.StatusBadRequest, "Order must be an integer")

	stored, err := store.FindStage(context.Background(), stageID)
	if err != nil {
		t.Fatalf("FindStage: %v", err)
	}
	if stored.Order != 3 {
		t.Errorf("order = %d, want 3 (rejected update must not change it)", stored.Order)
	}
}

func TestUpdateStageAcceptsNumericStringOrder(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")
	stageID := stage["id"].(string)

	rec := doJSON(t, router, http.MethodPut, "/api/stages/"+stageID, map[string]interface{}{"order": "5"})
	wantStatus(t, rec, http.StatusOK)
	if body := decodeObject(t, rec); body["order"] != float64(5) {
		t.Errorf("order = %v, want 5", body["order"])
	}
}

func TestUpdateStageEmptyBody(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")

	rec := doRaw(t, router, http.MethodPut, "/api/stages/"+stage["id"].(string), "")
	wantError(t, rec, http.StatusBadRequest, "Request body cannot be empty. Please provide 'name' and/or 'order'.")
}

func TestUpdateStageEmptyName(t *testing.T) {
	router, _ := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")

	rec := doJSON(t, router, http.MethodPut, "/api/stages/"+stage["id"].(string), map[string]interface{}{"name": ""})
	wantError(t, rec, http.StatusBadRequest, "Stage name cannot be an empty string if provided")
}

func TestUpdateStageNotFound(t *testing.T) {
	router, _ := newTestRouter()
	rec := doJSON(t, router, http.MethodPut, "/api/stages/ghost", map[string]interface{}{"name": "x"})
	wantError(t, rec, http.StatusNotFound, "Stage not found")
}

func TestDeleteStageCascadesToTasksAndSubtasks(t *testing.T) {
	router, store := newTestRouter()
	project := createProject(t, router, "P")
	stage := createStage(t, router, project["id"].(string), "S")
	stageID := stage["id"].(string)
	task := createTask(t, router, stageID, map[string]interface{}{"content": "T"})
	taskID := task["id"].(string)
	subtask := createSubTask(t, router, taskID, map[string]interface{}{"content": "ST"})

	rec := doJSON(t, router, http.MethodDelete, "/api/stages/"+stageID, nil)
	wantStatus(t, rec, http.StatusOK)
	if decodeObject(t, rec)["message"] != "Stage successfully deleted" {
		t.Errorf("unexpected message: %s", rec.Body.String())
	}

	ctx := context.Background()
	if _, err := store.FindTask(ctx, taskID); !errors.Is(err, repositories.ErrNotFound) {
		t.Error("task survived stage deletion")
	}
	if _, err := store.FindSubTask(ctx, subtask["id"].(string)); !errors.Is(err, repositories.ErrNotFound) {
		t.Error("subtask survived stage deletion")
	}
	// The parent project is untouched.
	if _, err := store.FindProject(ctx, project["id"].(string)); err != nil {
		t.Errorf("project should survive stage deletion: %v", err)
	}
}

func TestDeleteStageNotFound(t *testing.T) {
	router, _ := newTestRouter()
	rec := doJSON(t, router, http.MethodDelete, "/api/stages/ghost", nil)
	wantError(t, rec, http.StatusNotFound, "Stage not found")
}
