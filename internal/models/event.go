package models

// TaskEvent is the audit record published to Kafka after a successful
// task mutation.
type TaskEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	TaskID    int64  `json:"task_id"`   // Affected task
	UserID    int64  `json:"user_id"`   // Owner of the task
	Action    string `json:"action"`    // created / updated / deleted
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
