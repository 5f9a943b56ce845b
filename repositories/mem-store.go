package repositories

import (
	"context"
	"sync"

	"taskboard-project/backend/board-service/models"
)

type txKey struct{}

// MemStore keeps the board hierarchy in process memory. It implements the
// same Store contract as MongoStore and backs the test suites. Entities are
// stored and returned by value so callers never share state with the store.
type MemStore struct {
	mu       sync.Mutex
	projects map[string]models.Project
	stages   map[string]models.Stage
	tasks    map[string]models.Task
	subtasks map[string]models.SubTask
}

func NewMemStore() *MemStore {
	return &MemStore{
		projects: map[string]models.Project{},
		stages:   map[string]models.Stage{},
		tasks:    map[string]models.Task{},
		subtasks: map[string]models.SubTask{},
	}
}

// lock takes the store mutex unless the context carries an open transaction,
// which already holds it.
func (s *MemStore) lock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memSnapshot struct {
	projects map[string]models.Project
	stages   map[string]models.Stage
	tasks    map[string]models.Task
	subtasks map[string]models.SubTask
}

func (s *MemStore) snapshot() memSnapshot {
	snap := memSnapshot{
		projects: make(map[string]models.Project, len(s.projects)),
		stages:   make(map[string]models.Stage, len(s.stages)),
		tasks:    make(map[string]models.Task, len(s.tasks)),
		subtasks: make(map[string]models.SubTask, len(s.subtasks)),
	}
	for id, project := range s.projects {
		snap.projects[id] = project
	}
	for id, stage := range s.stages {
		snap.stages[id] = stage
	}
	for id, task := range s.tasks {
		snap.tasks[id] = task
	}
	for id, subtask := range s.subtasks {
		snap.subtasks[id] = subtask
	}
	return snap
}

func (s *MemStore) restore(snap memSnapshot) {
	s.projects = snap.projects
	s.stages = snap.stages
	s.tasks = snap.tasks
	s.subtasks = snap.subtasks
}

// InTransaction holds the store lock for the whole unit of work and restores
// a pre-transaction snapshot if fn fails.
func (s *MemStore) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *MemStore) InsertProject(ctx context.Context, project *models.Project) error {
	defer s.lock(ctx)()
	s.projects[project.ID] = *project
	return nil
}

func (s *MemStore) FindProject(ctx context.Context, id string) (*models.Project, error) {
	defer s.lock(ctx)()
	project, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &project, nil
}

func (s *MemStore) FindAllProjects(ctx context.Context) ([]models.Project, error) {
	defer s.lock(ctx)()
	projects := make([]models.Project, 0, len(s.projects))
	for _, project := range s.projects {
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *MemStore) ProjectNameInUse(ctx context.Context, name, excludeID string) (bool, error) {
	defer s.lock(ctx)()
	for _, project := range s.projects {
		if project.Name == name && project.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemStore) UpdateProject(ctx context.Context, project *models.Project) error {
	defer s.lock(ctx)()
	if _, ok := s.projects[project.ID]; !ok {
		return ErrNotFound
	}
	s.projects[project.ID] = *project
	return nil
}

func (s *MemStore) DeleteProject(ctx context.Context, id string) error {
	defer s.lock(ctx)()
	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemStore) InsertStage(ctx context.Context, stage *models.Stage) error {
	defer s.lock(ctx)()
	s.stages[stage.ID] = *stage
	return nil
}

func (s *MemStore) FindStage(ctx context.Context, id string) (*models.Stage, error) {
	defer s.lock(ctx)()
	stage, ok := s.stages[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &stage, nil
}

func (s *MemStore) FindStagesByProject(ctx context.Context, projectID string) ([]models.Stage, error) {
	defer s.lock(ctx)()
	stages := make([]models.Stage, 0)
	for _, stage := range s.stages {
		if stage.ProjectID == projectID {
			stages = append(stages, stage)
		}
	}
	return stages, nil
}

func (s *MemStore) MaxStageOrder(ctx context.Context, projectID string) (*int, error) {
	defer s.lock(ctx)()
	var max *int
	for _, stage := range s.stages {
		if stage.ProjectID != projectID {
			continue
		}
		order := stage.Order
		if max == nil || order > *max {
			max = &order
		}
	}
	return max, nil
}

func (s *MemStore) UpdateStage(ctx context.Context, stage *models.Stage) error {
	defer s.lock(ctx)()
	if _, ok := s.stages[stage.ID]; !ok {
		return ErrNotFound
	}
	s.stages[stage.ID] = *stage
	return nil
}

func (s *MemStore) DeleteStage(ctx context.Context, id string) error {
	defer s.lock(ctx)()
	if _, ok := s.stages[id]; !ok {
		return ErrNotFound
	}
	delete(s.stages, id)
	return nil
}

func (s *MemStore) DeleteStagesByProject(ctx context.Context, projectID string) error {
	defer s.lock(ctx)()
	for id, stage := range s.stages {
		if stage.ProjectID == projectID {
			delete(s.stages, id)
		}
	}
	return nil
}

func (s *MemStore) InsertTask(ctx context.Context, task *models.Task) error {
	defer s.lock(ctx)()
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemStore) FindTask(ctx context.Context, id string) (*models.Task, error) {
	defer s.lock(ctx)()
	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &task, nil
}

func (s *MemStore) FindTasksByStage(ctx context.Context, stageID string) ([]models.Task, error) {
	defer s.lock(ctx)()
	tasks := make([]models.Task, 0)
	for _, task := range s.tasks {
		if task.StageID == stageID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (s *MemStore) FindTaskIDsByStages(ctx context.Context, stageIDs []string) ([]string, error) {
	defer s.lock(ctx)()
	wanted := make(map[string]bool, len(stageIDs))
	for _, id := range stageIDs {
		wanted[id] = true
	}
	var ids []string
	for id, task := range s.tasks {
		if wanted[task.StageID] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *MemStore) MaxTaskOrder(ctx context.Context, stageID string) (*int, error) {
	defer s.lock(ctx)()
	var max *int
	for _, task := range s.tasks {
		if task.StageID != stageID {
			continue
		}
		order := task.Order
		if max == nil || order > *max {
			max = &order
		}
	}
	return max, nil
}

func (s *MemStore) UpdateTask(ctx context.Context, task *models.Task) error {
	defer s.lock(ctx)()
	if _, ok := s.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	s.tasks[task.ID] = *task
	return nil
}

func (s *MemStore) DeleteTask(ctx context.Context, id string) error {
	defer s.lock(ctx)()
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *MemStore) DeleteTasksByStages(ctx context.Context, stageIDs []string) error {
	defer s.lock(ctx)()
	wanted := make(map[string]bool, len(stageIDs))
	for _, id := range stageIDs {
		wanted[id] = true
	}
	for id, task := range s.tasks {
		if wanted[task.StageID] {
			delete(s.tasks, id)
		}
	}
	return nil
}

func (s *MemStore) InsertSubTask(ctx context.Context, subtask *models.SubTask) error {
	defer s.lock(ctx)()
	s.subtasks[subtask.ID] = *subtask
	return nil
}

func (s *MemStore) FindSubTask(ctx context.Context, id string) (*models.SubTask, error) {
	defer s.lock(ctx)()
	subtask, ok := s.subtasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &subtask, nil
}

func (s *MemStore) FindSubTasksByTask(ctx context.Context, taskID string) ([]models.SubTask, error) {
	defer s.lock(ctx)()
	subtasks := make([]models.SubTask, 0)
	for _, subtask := range s.subtasks {
		if subtask.ParentTaskID == taskID {
			subtasks = append(subtasks, subtask)
		}
	}
	return subtasks, nil
}

func (s *MemStore) MaxSubTaskOrder(ctx context.Context, taskID string) (*int, error) {
	defer s.lock(ctx)()
	var max *int
	for _, subtask := range s.subtasks {
		if subtask.ParentTaskID != taskID {
			continue
		}
		order := subtask.Order
		if max == nil || order > *max {
			max = &order
		}
	}
	return max, nil
}

func (s *MemStore) UpdateSubTask(ctx context.Context, subtask *models.SubTask) error {
	defer s.lock(ctx)()
	if _, ok := s.subtasks[subtask.ID]; !ok {
		return ErrNotFound
	}
	s.subtasks[subtask.ID] = *subtask
	return nil
}

func (s *MemStore) DeleteSubTask(ctx context.Context, id string) error {
	defer s.lock(ctx)()
	if _, ok := s.subtasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.subtasks, id)
	return nil
}

func (s *MemStore) DeleteSubTasksByTasks(ctx context.Context, taskIDs []string) error {
	defer s.lock(ctx)()
	wanted := make(map[string]bool, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = true
	}
	for id, subtask := range s.subtasks {
		if wanted[subtask.ParentTaskID] {
			delete(s.subtasks, id)
		}
	}
	return nil
}
