package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"taskboard-project/backend/board-service/repositories"
	"taskboard-project/backend/board-service/services"
)

// newTestRouter wires the real router over an in-memory store, so the tests
// drive the same code paths as production minus MongoDB.
func newTestRouter() (*mux.Router, *repositories.MemStore) {
	store := repositories.NewMemStore()
	router := NewRouter(
		NewProjectHandler(services.NewProjectService(store)),
		NewStageHandler(services.NewStageService(store)),
		NewTaskHandler(services.NewTaskService(store)),
		NewSubTaskHandler(services.NewSubTaskService(store)),
	)
	return router, store
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doRaw(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	wantStatus(t, rec, status)
	body := decodeObject(t, rec)
	if body["error"] != message {
		t.Fatalf("error = %q, want %q", body["error"], message)
	}
}

func createProject(t *testing.T, router *mux.Router, name string) map[string]interface{} {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/projects", map[string]interface{}{"name": name})
	wantStatus(t, rec, http.StatusCreated)
	return decodeObject(t, rec)
}

func createStage(t *testing.T, router *mux.Router, projectID, name string) map[string]interface{} {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/projects/"+projectID+"/stages", map[string]interface{}{"name": name})
	wantStatus(t, rec, http.StatusCreated)
	return decodeObject(t, rec)
}

func createTask(t *testing.T, router *mux.Router, stageID string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/stages/"+stageID+"/tasks", body)
	wantStatus(t, rec, http.StatusCreated)
	return decodeObject(t, rec)
}

func createSubTask(t *testing.T, router *mux.Router, taskID string, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/tasks/"+taskID+"/subtasks", body)
	wantStatus(t, rec, http.StatusCreated)
	return decodeObject(t, rec)
}
