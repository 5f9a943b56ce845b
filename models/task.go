package models

import "time"

// Task belongs to a stage. StageID is mutable: a task may be moved to any
// existing stage. StartDate and EndDate hold validated YYYY-MM-DD strings.
type Task struct {
	ID        string    `json:"id" bson:"_id"`
	Content   string    `json:"content" bson:"content"`
	StageID   string    `json:"stage_id" bson:"stageId"`
	Assignee  *string   `json:"assignee" bson:"assignee"`
	StartDate *string   `json:"start_date" bson:"startDate"`
	EndDate   *string   `json:"end_date" bson:"endDate"`
	Order     int       `json:"order" bson:"order"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`
}

// TaskDetail nests the task's subtasks.
type TaskDetail struct {
	Task
	Subtasks []SubTask `json:"subtasks"`
}
