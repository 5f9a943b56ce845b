package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

type TaskService struct {
	store repositories.Store
}

func NewTaskService(store repositories.Store) *TaskService {
	return &TaskService{store: store}
}

// CreateTask adds a task to an existing stage, placed after the stage's
// current last task. The response nests the (empty) subtask list.
func (s *TaskService) CreateTask(ctx context.Context, stageID string, payload models.Patch) (*models.TaskDetail, error) {
	if _, err := s.store.FindStage(ctx, stageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Message: "Stage not found"}
		}
		return nil, err
	}

	content, err := requiredText(payload, "content", "Task content (content) is required")
	if err != nil {
		return nil, err
	}

	startDate, err := dateField(payload, "start_date")
	if err != nil {
		return nil, err
	}
	endDate, err := dateField(payload, "end_date")
	if err != nil {
		return nil, err
	}

	assignee, err := optionalText(payload, "assignee", "Task assignee")
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.store.MaxTaskOrder(ctx, stageID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:        uuid.New().String(),
		Content:   content,
		StageID:   stageID,
		Assignee:  assignee,
		StartDate: startDate,
		EndDate:   endDate,
		Order:     nextOrder(maxOrder),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.InsertTask(ctx, task); err != nil {
		return nil, err
	}
	return &models.TaskDetail{Task: *task, Subtasks: make([]models.SubTask, 0)}, nil
}

// UpdateTask applies a partial update. A stage_id that differs from the
// current one re-parents the task onto the target stage; the task keeps its
// order unless the same request also carries one.
func (s *TaskService) UpdateTask(ctx context.Context, id string, payload models.Patch) (*models.TaskDetail, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, &ValidationError{Message: "Request body cannot be empty. Please provide fields to update."}
	}

	content, err := updatedText(payload, "content", "Task content cannot be an empty string if provided")
	if err != nil {
		return nil, err
	}
	if content != nil {
		task.Content = *content
	}

	if payload.Has("assignee") {
		assignee, err := optionalText(payload, "assignee", "Task assignee")
		if err != nil {
			return nil, err
		}
		task.Assignee = assignee
	}

	if payload.Has("start_date") {
		startDate, err := dateField(payload, "start_date")
		if err != nil {
			return nil, err
		}
		task.StartDate = startDate
	}

	if payload.Has("end_date") {
		endDate, err := dateField(payload, "end_date")
		if err != nil {
			return nil, err
		}
		task.EndDate = endDate
	}

	if payload.Has("order") {
		order, err := orderField(payload, "order")
		if err != nil {
			return nil, err
		}
		task.Order = order
	}

	if payload.Has("stage_id") {
		target, err := payload.StringField("stage_id")
		if err != nil || target == nil {
			return nil, &ValidationError{Message: "Target stage id must be a string"}
		}
		if *target != task.StageID {
			if _, err := s.store.FindStage(ctx, *target); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, &NotFoundError{Message: fmt.Sprintf("Target stage with id %s not found", *target)}
				}
				return nil, err
			}
			task.StageID = *target
		}
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	detail, err := taskDetail(ctx, s.store, *task)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteTask removes the task and its subtasks in one unit of work.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.findTask(ctx, id); err != nil {
		return err
	}

	return s.store.InTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.DeleteSubTasksByTasks(ctx, []string{id}); err != nil {
			return err
		}
		return s.store.DeleteTask(ctx, id)
	})
}

func (s *TaskService) findTask(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.store.FindTask(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Message: "Task not found"}
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
