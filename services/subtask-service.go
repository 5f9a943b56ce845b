package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

type SubTaskService struct {
	store repositories.Store
}

func NewSubTaskService(store repositories.Store) *SubTaskService {
	return &SubTaskService{store: store}
}

// CreateSubTask adds a subtask to an existing parent task, placed after the
// task's current last subtask. completed defaults to false.
func (s *SubTaskService) CreateSubTask(ctx context.Context, parentTaskID string, payload models.Patch) (*models.SubTask, error) {
	if _, err := s.store.FindTask(ctx, parentTaskID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Message: "Parent task not found"}
		}
		return nil, err
	}

	content, err := requiredText(payload, "content", "Subtask content (content) is required")
	if err != nil {
		return nil, err
	}

	completed := false
	if payload.Has("completed") {
		completed, err = completedField(payload, "completed")
		if err != nil {
			return nil, err
		}
	}

	maxOrder, err := s.store.MaxSubTaskOrder(ctx, parentTaskID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	subtask := &models.SubTask{
		ID:           uuid.New().String(),
		Content:      content,
		ParentTaskID: parentTaskID,
		Completed:    completed,
		Order:        nextOrder(maxOrder),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.InsertSubTask(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

// UpdateSubTask applies a partial update and returns the flat subtask.
func (s *SubTaskService) UpdateSubTask(ctx context.Context, id string, payload models.Patch) (*models.SubTask, error) {
	subtask, err := s.findSubTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, &ValidationError{Message: "Request body cannot be empty"}
	}

	content, err := updatedText(payload, "content", "Subtask content cannot be empty")
	if err != nil {
		return nil, err
	}
	if content != nil {
		subtask.Content = *content
	}

	if payload.Has("completed") {
		completed, err := completedField(payload, "completed")
		if err != nil {
			return nil, err
		}
		subtask.Completed = completed
	}

	if payload.Has("order") {
		order, err := orderField(payload, "order")
		if err != nil {
			return nil, err
		}
		subtask.Order = order
	}

	subtask.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateSubTask(ctx, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

// DeleteSubTask removes a single subtask. Nothing cascades below subtasks.
func (s *SubTaskService) DeleteSubTask(ctx context.Context, id string) error {
	if _, err := s.findSubTask(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteSubTask(ctx, id)
}

func (s *SubTaskService) findSubTask(ctx context.Context, id string) (*models.SubTask, error) {
	subtask, err := s.store.FindSubTask(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Message: "Subtask not found"}
	}
	if err != nil {
		return nil, err
	}
	return subtask, nil
}
