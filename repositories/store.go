package repositories

import (
	"context"
	"errors"

	"taskboard-project/backend/board-service/models"
)

// ErrNotFound is returned by Find, Update and Delete methods when the id
// does not resolve to a stored entity.
var ErrNotFound = errors.New("entity not found")

// Store is the persistence boundary for the board hierarchy. It exposes
// per-entity CRUD primitives plus the parent-scoped queries the services
// need (children by parent, max sibling order, bulk child deletion) and a
// single unit of work for cascade deletes.
type Store interface {
	// InTransaction runs fn inside one atomic unit of work. If fn returns
	// an error nothing it did is persisted. Store methods called inside fn
	// must be given the context passed to fn.
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	InsertProject(ctx context.Context, project *models.Project) error
	FindProject(ctx context.Context, id string) (*models.Project, error)
	FindAllProjects(ctx context.Context) ([]models.Project, error)
	// ProjectNameInUse reports whether a project other than excludeID
	// already uses name. Pass an empty excludeID when creating.
	ProjectNameInUse(ctx context.Context, name, excludeID string) (bool, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id string) error

	InsertStage(ctx context.Context, stage *models.Stage) error
	FindStage(ctx context.Context, id string) (*models.Stage, error)
	FindStagesByProject(ctx context.Context, projectID string) ([]models.Stage, error)
	// MaxStageOrder returns the highest order among the project's stages,
	// or nil when the project has no stages.
	MaxStageOrder(ctx context.Context, projectID string) (*int, error)
	UpdateStage(ctx context.Context, stage *models.Stage) error
	DeleteStage(ctx context.Context, id string) error
	DeleteStagesByProject(ctx context.Context, projectID string) error

	InsertTask(ctx context.Context, task *models.Task) error
	FindTask(ctx context.Context, id string) (*models.Task, error)
	FindTasksByStage(ctx context.Context, stageID string) ([]models.Task, error)
	FindTaskIDsByStages(ctx context.Context, stageIDs []string) ([]string, error)
	MaxTaskOrder(ctx context.Context, stageID string) (*int, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id string) error
	DeleteTasksByStages(ctx context.Context, stageIDs []string) error

	InsertSubTask(ctx context.Context, subtask *models.SubTask) error
	FindSubTask(ctx context.Context, id string) (*models.SubTask, error)
	FindSubTasksByTask(ctx context.Context, taskID string) ([]models.SubTask, error)
	MaxSubTaskOrder(ctx context.Context, taskID string) (*int, error)
	UpdateSubTask(ctx context.Context, subtask *models.SubTask) error
	DeleteSubTask(ctx context.Context, id string) error
	DeleteSubTasksByTasks(ctx context.Context, taskIDs []string) error
}
