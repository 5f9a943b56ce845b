package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard-project/backend/board-service/logging"
	"taskboard-project/backend/board-service/models"
)

// MongoStore persists the board hierarchy in four MongoDB collections. All
// operations go through a circuit breaker so a flapping database trips fast
// instead of piling up timed-out requests. Not-found lookups count as
// successes for the breaker.
type MongoStore struct {
	client   *mongo.Client
	projects *mongo.Collection
	stages   *mongo.Collection
	tasks    *mongo.Collection
	subtasks *mongo.Collection
	breaker  *gobreaker.CircuitBreaker
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client:   client,
		projects: db.Collection("projects"),
		stages:   db.Collection("stages"),
		tasks:    db.Collection("tasks"),
		subtasks: db.Collection("subtasks"),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "BoardStoreCB",
			MaxRequests: 1,
			Timeout:     5 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
			},
		}),
	}
}

func (s *MongoStore) do(op func() error) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, op()
	})
	return err
}

// InTransaction runs fn inside a MongoDB session transaction. The session
// context is handed to fn so every store call made inside it joins the
// transaction.
func (s *MongoStore) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}

func (s *MongoStore) InsertProject(ctx context.Context, project *models.Project) error {
	return s.do(func() error {
		_, err := s.projects.InsertOne(ctx, project)
		return err
	})
}

func (s *MongoStore) FindProject(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := s.do(func() error {
		return mapNoDocuments(s.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&project))
	})
	if err != nil {
		return nil, err
	}
	project.CreatedAt = project.CreatedAt.UTC()
	project.UpdatedAt = project.UpdatedAt.UTC()
	return &project, nil
}

func (s *MongoStore) FindAllProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.do(func() error {
		cursor, err := s.projects.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &projects)
	})
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].CreatedAt = projects[i].CreatedAt.UTC()
		projects[i].UpdatedAt = projects[i].UpdatedAt.UTC()
	}
	return projects, nil
}

func (s *MongoStore) ProjectNameInUse(ctx context.Context, name, excludeID string) (bool, error) {
	var count int64
	err := s.do(func() error {
		filter := bson.M{"name": name}
		if excludeID != "" {
			filter["_id"] = bson.M{"$ne": excludeID}
		}
		var err error
		count, err = s.projects.CountDocuments(ctx, filter)
		return err
	})
	return count > 0, err
}

func (s *MongoStore) UpdateProject(ctx context.Context, project *models.Project) error {
	return s.do(func() error {
		result, err := s.projects.ReplaceOne(ctx, bson.M{"_id": project.ID}, project)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteProject(ctx context.Context, id string) error {
	return s.do(func() error {
		result, err := s.projects.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) InsertStage(ctx context.Context, stage *models.Stage) error {
	return s.do(func() error {
		_, err := s.stages.InsertOne(ctx, stage)
		return err
	})
}

func (s *MongoStore) FindStage(ctx context.Context, id string) (*models.Stage, error) {
	var stage models.Stage
	err := s.do(func() error {
		return mapNoDocuments(s.stages.FindOne(ctx, bson.M{"_id": id}).Decode(&stage))
	})
	if err != nil {
		return nil, err
	}
	stage.CreatedAt = stage.CreatedAt.UTC()
	stage.UpdatedAt = stage.UpdatedAt.UTC()
	return &stage, nil
}

func (s *MongoStore) FindStagesByProject(ctx context.Context, projectID string) ([]models.Stage, error) {
	var stages []models.Stage
	err := s.do(func() error {
		cursor, err := s.stages.Find(ctx, bson.M{"projectId": projectID})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &stages)
	})
	if err != nil {
		return nil, err
	}
	for i := range stages {
		stages[i].CreatedAt = stages[i].CreatedAt.UTC()
		stages[i].UpdatedAt = stages[i].UpdatedAt.UTC()
	}
	return stages, nil
}

func (s *MongoStore) MaxStageOrder(ctx context.Context, projectID string) (*int, error) {
	return s.maxOrder(ctx, s.stages, bson.M{"projectId": projectID})
}

func (s *MongoStore) UpdateStage(ctx context.Context, stage *models.Stage) error {
	return s.do(func() error {
		result, err := s.stages.ReplaceOne(ctx, bson.M{"_id": stage.ID}, stage)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteStage(ctx context.Context, id string) error {
	return s.do(func() error {
		result, err := s.stages.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteStagesByProject(ctx context.Context, projectID string) error {
	return s.do(func() error {
		_, err := s.stages.DeleteMany(ctx, bson.M{"projectId": projectID})
		return err
	})
}

func (s *MongoStore) InsertTask(ctx context.Context, task *models.Task) error {
	return s.do(func() error {
		_, err := s.tasks.InsertOne(ctx, task)
		return err
	})
}

func (s *MongoStore) FindTask(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := s.do(func() error {
		return mapNoDocuments(s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task))
	})
	if err != nil {
		return nil, err
	}
	task.CreatedAt = task.CreatedAt.UTC()
	task.UpdatedAt = task.UpdatedAt.UTC()
	return &task, nil
}

func (s *MongoStore) FindTasksByStage(ctx context.Context, stageID string) ([]models.Task, error) {
	var tasks []models.Task
	err := s.do(func() error {
		cursor, err := s.tasks.Find(ctx, bson.M{"stageId": stageID})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &tasks)
	})
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].CreatedAt = tasks[i].CreatedAt.UTC()
		tasks[i].UpdatedAt = tasks[i].UpdatedAt.UTC()
	}
	return tasks, nil
}

func (s *MongoStore) FindTaskIDsByStages(ctx context.Context, stageIDs []string) ([]string, error) {
	var ids []string
	err := s.do(func() error {
		cursor, err := s.tasks.Find(ctx, bson.M{"stageId": bson.M{"$in": stageIDs}})
		if err != nil {
			return err
		}
		var tasks []models.Task
		if err := cursor.All(ctx, &tasks); err != nil {
			return err
		}
		for _, task := range tasks {
			ids = append(ids, task.ID)
		}
		return nil
	})
	return ids, err
}

func (s *MongoStore) MaxTaskOrder(ctx context.Context, stageID string) (*int, error) {
	return s.maxOrder(ctx, s.tasks, bson.M{"stageId": stageID})
}

func (s *MongoStore) UpdateTask(ctx context.Context, task *models.Task) error {
	return s.do(func() error {
		result, err := s.tasks.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteTask(ctx context.Context, id string) error {
	return s.do(func() error {
		result, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteTasksByStages(ctx context.Context, stageIDs []string) error {
	return s.do(func() error {
		_, err := s.tasks.DeleteMany(ctx, bson.M{"stageId": bson.M{"$in": stageIDs}})
		return err
	})
}

func (s *MongoStore) InsertSubTask(ctx context.Context, subtask *models.SubTask) error {
	return s.do(func() error {
		_, err := s.subtasks.InsertOne(ctx, subtask)
		return err
	})
}

func (s *MongoStore) FindSubTask(ctx context.Context, id string) (*models.SubTask, error) {
	var subtask models.SubTask
	err := s.do(func() error {
		return mapNoDocuments(s.subtasks.FindOne(ctx, bson.M{"_id": id}).Decode(&subtask))
	})
	if err != nil {
		return nil, err
	}
	subtask.CreatedAt = subtask.CreatedAt.UTC()
	subtask.UpdatedAt = subtask.UpdatedAt.UTC()
	return &subtask, nil
}

func (s *MongoStore) FindSubTasksByTask(ctx context.Context, taskID string) ([]models.SubTask, error) {
	var subtasks []models.SubTask
	err := s.do(func() error {
		cursor, err := s.subtasks.Find(ctx, bson.M{"parentTaskId": taskID})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &subtasks)
	})
	if err != nil {
		return nil, err
	}
	for i := range subtasks {
		subtasks[i].CreatedAt = subtasks[i].CreatedAt.UTC()
		subtasks[i].UpdatedAt = subtasks[i].UpdatedAt.UTC()
	}
	return subtasks, nil
}

func (s *MongoStore) MaxSubTaskOrder(ctx context.Context, taskID string) (*int, error) {
	return s.maxOrder(ctx, s.subtasks, bson.M{"parentTaskId": taskID})
}

func (s *MongoStore) UpdateSubTask(ctx context.Context, subtask *models.SubTask) error {
	return s.do(func() error {
		result, err := s.subtasks.ReplaceOne(ctx, bson.M{"_id": subtask.ID}, subtask)
		if err != nil {
			return err
		}
		if result.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteSubTask(ctx context.Context, id string) error {
	return s.do(func() error {
		result, err := s.subtasks.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if result.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *MongoStore) DeleteSubTasksByTasks(ctx context.Context, taskIDs []string) error {
	return s.do(func() error {
		_, err := s.subtasks.DeleteMany(ctx, bson.M{"parentTaskId": bson.M{"$in": taskIDs}})
		return err
	})
}

// maxOrder fetches the highest "order" value among the documents matching
// filter, or nil when there are none.
func (s *MongoStore) maxOrder(ctx context.Context, collection *mongo.Collection, filter bson.M) (*int, error) {
	var doc struct {
		Order int `bson:"order"`
	}
	err := s.do(func() error {
		opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})
		return mapNoDocuments(collection.FindOne(ctx, filter, opts).Decode(&doc))
	})
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc.Order, nil
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
