package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskboard-project/backend/board-service/models"
	"taskboard-project/backend/board-service/repositories"
)

type ProjectService struct {
	store repositories.Store
}

func NewProjectService(store repositories.Store) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProject validates the payload, enforces project-name uniqueness and
// persists a new project.
func (s *ProjectService) CreateProject(ctx context.Context, payload models.Patch) (*models.Project, error) {
	name, err := requiredText(payload, "name", "Project name (name) is required")
	if err != nil {
		return nil, err
	}

	description, err := optionalText(payload, "description", "Project description")
	if err != nil {
		return nil, err
	}

	inUse, err := s.store.ProjectNameInUse(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, &ConflictError{Message: fmt.Sprintf("Project name %q already exists", name)}
	}

	now := time.Now().UTC()
	project := &models.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.InsertProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetAllProjects returns every project, newest first, without nested stages.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.FindAllProjects(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		// A nil slice would render as JSON null instead of [].
		projects = make([]models.Project, 0)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

// GetProject returns one project with its full stage/task/subtask tree.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.ProjectDetail, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}
	detail, err := projectDetail(ctx, s.store, *project)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateProject applies a partial update. Only keys present in the payload
// are touched; updated_at advances on every successful commit, even when the
// supplied values equal the stored ones.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, payload models.Patch) (*models.Project, error) {
	project, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(payload) == 0 {
		return nil, &ValidationError{Message: "Request body cannot be empty. Please provide 'name' and/or 'description'."}
	}

	name, err := updatedText(payload, "name", "Project name cannot be an empty string if provided")
	if err != nil {
		return nil, err
	}
	if name != nil && *name != project.Name {
		inUse, err := s.store.ProjectNameInUse(ctx, *name, project.ID)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, &ConflictError{Message: fmt.Sprintf("Project name %q is already used by another project", *name)}
		}
		project.Name = *name
	}

	if payload.Has("description") {
		description, err := optionalText(payload, "description", "Project description")
		if err != nil {
			return nil, err
		}
		project.Description = description
	}

	project.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project and its whole subtree (stages, their
// tasks, and those tasks' subtasks) in one unit of work.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.findProject(ctx, id); err != nil {
		return err
	}

	return s.store.InTransaction(ctx, func(ctx context.Context) error {
		stages, err := s.store.FindStagesByProject(ctx, id)
		if err != nil {
			return err
		}
		stageIDs := make([]string, 0, len(stages))
		for _, stage := range stages {
			stageIDs = append(stageIDs, stage.ID)
		}

		taskIDs, err := s.store.FindTaskIDsByStages(ctx, stageIDs)
		if err != nil {
			return err
		}

		if err := s.store.DeleteSubTasksByTasks(ctx, taskIDs); err != nil {
			return err
		}
		if err := s.store.DeleteTasksByStages(ctx, stageIDs); err != nil {
			return err
		}
		if err := s.store.DeleteStagesByProject(ctx, id); err != nil {
			return err
		}
		return s.store.DeleteProject(ctx, id)
	})
}

func (s *ProjectService) findProject(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.store.FindProject(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &NotFoundError{Message: "Project not found"}
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}
