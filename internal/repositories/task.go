package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/models"
)

const taskColumns = `id, user_id, title, description, is_completed, created_at, updated_at`

// TaskReadRepository handles task read operations.
type TaskReadRepository struct {
	db *sqlx.DB
}

func NewTaskReadRepository(db *sqlx.DB) *TaskReadRepository {
	return &TaskReadRepository{db: db}
}

// GetByID returns the task with the given id, or nil if no such task exists.
func (r *TaskReadRepository) GetByID(ctx context.Context, id int64) (*models.TaskDB, error) {
	const query = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1
	`

	var task models.TaskDB
	err := r.db.GetContext(ctx, &task, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByUserID returns the tasks owned by userID, ordered by id ascending
// so that pagination is deterministic.
func (r *TaskReadRepository) ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.TaskDB, error) {
	const query = `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY id ASC
		OFFSET $2
		LIMIT $3
	`
	args := []any{userID, skip, limit}

	tasks := make([]models.TaskDB, 0)
	err := r.db.SelectContext(ctx, &tasks, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(tasks),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// TaskWriteRepository handles task write operations.
type TaskWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTaskWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TaskWriteRepository {
	return &TaskWriteRepository{db: db, txGetter: txGetter}
}

func (r *TaskWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new task attached to userID and returns the stored row.
func (r *TaskWriteRepository) Save(ctx context.Context, userID int64, title string, description *string) (*models.TaskDB, error) {
	const query = `
		INSERT INTO tasks (user_id, title, description, is_completed, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING ` + taskColumns + `
	`
	args := []any{userID, title, description}

	var task models.TaskDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &task, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update writes the mutable columns of the task and refreshes updated_at.
func (r *TaskWriteRepository) Update(ctx context.Context, task *models.TaskDB) (*models.TaskDB, error) {
	const query = `
		UPDATE tasks
		SET title = $2,
		    description = $3,
		    is_completed = $4,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns + `
	`
	args := []any{task.ID, task.Title, task.Description, task.IsCompleted}

	var updated models.TaskDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task row. No soft delete.
func (r *TaskWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM tasks
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
