package services

import (
	"context"
	"sort"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

// The nested representations are assembled here rather than stored: children
// are fetched per parent and sorted ascending by order at serialization
// time.

func taskDetail(ctx context.Context, store repositories.Store, task models.Task) (models.TaskDetail, error) {
	subtasks, err := store.FindSubTasksByTask(ctx, task.ID)
	if err != nil {
		return models.TaskDetail{}, err
	}
	if subtasks == nil {
		// A nil slice would render as JSON null instead of [].
		subtasks = make([]models.SubTask, 0)
	}
	sort.Slice(subtasks, func(i, j int) bool {
		return subtasks[i].Order < subtasks[j].Order
	})
	return models.TaskDetail{Task: task, Subtasks: subtasks}, nil
}

func stageDetail(ctx context.Context, store repositories.Store, stage models.Stage) (models.StageDetail, error) {
	tasks, err := store.FindTasksByStage(ctx, stage.ID)
	if err != nil {
		return models.StageDetail{}, err
	}
	details := make([]models.TaskDetail, 0, len(tasks))
	for _, task := range tasks {
		detail, err := taskDetail(ctx, store, task)
		if err != nil {
			return models.StageDetail{}, err
		}
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Order < details[j].Order
	})
	return models.StageDetail{Stage: stage, Tasks: details}, nil
}

func projectDetail(ctx context.Context, store repositories.Store, project models.Project) (models.ProjectDetail, error) {
	stages, err := store.FindStagesByProject(ctx, project.ID)
	if err != nil {
		return models.ProjectDetail{}, err
	}
	details := make([]models.StageDetail, 0, len(stages))
	for _, stage := range stages {
		detail, err := stageDetail(ctx, store, stage)
		if err != nil {
			return models.ProjectDetail{}, err
		}
		details = append(details, detail)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Order < details[j].Order
	})
	return models.ProjectDetail{Project: project, Stages: details}, nil
}
