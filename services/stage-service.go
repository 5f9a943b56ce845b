package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

type StageService struct {
	store repositories.Store
}

func NewStageService(store repositories.Store) *StageService {
	return &StageService{store: store}
}

// CreateStage adds a stage to an existing project, placed after the
// project's current last stage.
func (s *StageService) CreateStage(ctx context.Context, projectID string, payload models.Patch) (*models.Stage, error) {
	if _, err := s.store.FindProject(ctx, projectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Message: "Project not found"}
		}
		return nil, err
	}

	name, err := requiredText(payload, "name", "Stage name (name) is required")
	if err != nil {
		return nil, err
	}

	maxOrder, err := s.store.MaxStageOrder(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stage := &models.Stage{
		ID:        uuid.New().String(),
		Name:      name,
		ProjectID: projectID,
		Order:     nextOrder(maxOrder),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.InsertStage(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

// UpdateStage applies a partial update and returns the stage with its tasks
// nested.
func (s *StageService) UpdateStage(ctx context.Context, id string, payload models.Patch) (*models.StageDetail, error) {
	stage, err := s.findStage(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, &ValidationError{Message: "Request body cannot be empty. Please provide 'name' and/or 'order'."}
	}

	name, err := updatedText(payload, "name", "Stage name cannot be an empty string if provided")
	if err != nil {
		return nil, err
	}
	if name != nil {
		stage.Name = *name
	}

	if payload.Has("order") {
		order, err := orderField(payload, "order")
		if err != nil {
			return nil, err
		}
		stage.Order = order
	}

	stage.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateStage(ctx, stage); err != nil {
		return nil, err
	}

	detail, err := stageDetail(ctx, s.store, *stage)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteStage removes the stage together with its tasks and their subtasks
// in one unit of work.
func (s *StageService) DeleteStage(ctx context.Context, id string) error {
	if _, err := s.findStage(ctx, id); err != nil {
		return err
	}

	return s.store.InTransaction(ctx, func(ctx context.Context) error {
		taskIDs, err := s.store.FindTaskIDsByStages(ctx, []string{id})
		if err != nil {
			return err
		}
		if err := s.store.DeleteSubTasksByTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.store.DeleteTasksByStages(ctx, []string{id}); err != nil {
			return err
		}
		return s.store.DeleteStage(ctx, id)
	})
}

func (s *StageService) findStage(ctx context.Context, id string) (*models.Stage, error) {
	stage, err := s.store.FindStage(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Message: "Stage not found"}
	}
	if err != nil {
		return nil, err
	}
	return stage, nil
}
