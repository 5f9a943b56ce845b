package models

import "time"

type Project struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description *string   `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt"`
}

// ProjectDetail is the detail-view representation: the project together with
// its stages, each stage carrying its tasks and subtasks. The list view and
// the create/update responses use the flat Project instead.
type ProjectDetail struct {
	Project
	Stages []StageDetail `json:"stages"`
}
