package models

import "time"

type Stage struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	ProjectID string    `json:"project_id" bson:"projectId"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// StageDetail nests the stage's tasks (with their subtasks).
type StageDetail struct {
	Stage
	Tasks []TaskDetail `json:"tasks"`
}
