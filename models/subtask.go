package models

import "time"

type SubTask struct {
	ID           string    `json:"id" bson:"_id"`
	Content      string    `json:"content" bson:"content"`
	ParentTaskID string    `json:"parent_task_id" bson:"parentTaskId"`
	Completed    bool      `json:"completed" bson:"completed"`
	Order        int       `json:"order" bson:"order"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updatedAt"`
}
