package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

// nilSliceStore mimics the Mongo store's behavior on empty result sets,
// where cursor decoding leaves the destination slice nil.
type nilSliceStore struct {
	*repositories.MemStore
}

func (s nilSliceStore) FindAllProjects(ctx context.Context) ([]models.Project, error) {
	return nil, nil
}

func (s nilSliceStore) FindSubTasksByTask(ctx context.Context, taskID string) ([]models.SubTask, error) {
	return nil, nil
}

func TestGetAllProjectsRendersEmptyArray(t *testing.T) {
	service := NewProjectService(nilSliceStore{repositories.NewMemStore()})

	projects, err := service.GetAllProjects(context.Background())
	if err != nil {
		t.Fatalf("GetAllProjects: %v", err)
	}
	if projects == nil {
		t.Fatal("GetAllProjects returned a nil slice")
	}

	raw, err := json.Marshal(projects)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("empty board serializes as %s, want []", raw)
	}
}

func TestTaskDetailRendersEmptySubtasksArray(t *testing.T) {
	store := nilSliceStore{repositories.NewMemStore()}

	detail, err := taskDetail(context.Background(), store, models.Task{ID: "t1", Content: "T"})
	if err != nil {
		t.Fatalf("taskDetail: %v", err)
	}
	if detail.Subtasks == nil {
		t.Fatal("Subtasks is nil")
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"subtasks":[]`) {
		t.Errorf("task detail serializes as %s, want a \"subtasks\":[] array", raw)
	}
}
