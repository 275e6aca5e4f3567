package models

import "time"

// TaskDB represents a row of the tasks table. Every task belongs to
// exactly one user; the owner never changes after creation.
type TaskDB struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	IsCompleted bool       `json:"is_completed" db:"is_completed"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"` // nil until the first mutation
}

// TaskUpdate carries the fields of a partial task update. Nil Title and
// IsCompleted mean "leave unchanged". Description is applied only when
// DescriptionSet is true, so an explicit null clears the column while an
// omitted field leaves it alone.
type TaskUpdate struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	IsCompleted    *bool
}
