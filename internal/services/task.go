package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"
	"github.com/ssemenov2018/task-manager-api/internal/logger"
	"github.com/ssemenov2018/task-manager-api/internal/models"
)

// Error variables
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskAccessDenied = errors.New("task does not belong to user")
	ErrStoreIntegrity   = errors.New("integrity error")
)

// mapIntegrityViolation converts Postgres constraint violations into
// ErrStoreIntegrity. Covers the owner being deleted between the existence
// check and the insert. Other errors pass through unchanged.
func mapIntegrityViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23503" || pgErr.Code == "23505") {
		return ErrStoreIntegrity
	}
	return err
}

// TaskReader defines read-only operations for tasks.
type TaskReader interface {
	GetByID(ctx context.Context, id int64) (*models.TaskDB, error)
	ListByUserID(ctx context.Context, userID int64, skip, limit int) ([]models.TaskDB, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Save(ctx context.Context, userID int64, title string, description *string) (*models.TaskDB, error)
	Update(ctx context.Context, task *models.TaskDB) (*models.TaskDB, error)
	Delete(ctx context.Context, id int64) error
}

// UserGetter resolves a user id to a user record.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TaskService enforces ownership and existence invariants on top of the
// task repositories and publishes audit events after mutations.
type TaskService struct {
	reader      TaskReader
	writer      TaskWriter
	users       UserGetter
	eventWriter EventWriter
}

// NewTaskService creates a new TaskService.
func NewTaskService(reader TaskReader, writer TaskWriter, users UserGetter, eventWriter EventWriter) *TaskService {
	return &TaskService{
		reader:      reader,
		writer:      writer,
		users:       users,
		eventWriter: eventWriter,
	}
}

// publishEvent publishes a task audit event to Kafka. Publishing is
// best-effort: failures are logged and never fail the request.
func (s *TaskService) publishEvent(ctx context.Context, taskID, userID int64, action string) {
	if s.eventWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "task_id", taskID, "action", action)
		return
	}

	event := models.TaskEvent{
		EventID:   uuid.NewString(),
		TaskID:    taskID,
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal task event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(taskID, 10)),
		Value: data,
	}

	if err := s.eventWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish task event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("task event published", "event_id", event.EventID, "action", action)
	}
}

// resolveOwned fetches a task and checks it belongs to userID.
// A missing row yields ErrTaskNotFound; a row owned by someone else
// yields ErrTaskAccessDenied, so existence leaks only by error kind.
func (s *TaskService) resolveOwned(ctx context.Context, taskID, userID int64) (*models.TaskDB, error) {
	task, err := s.reader.GetByID(ctx, taskID)
	if err != nil {
		logger.Log.Errorw("failed to get task", "task_id", taskID, "err", err)
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		logger.Log.Errorw("task access denied", "task_id", taskID, "user_id", userID)
		return nil, ErrTaskAccessDenied
	}
	return task, nil
}

// Create persists a new task attached to userID. The user id is
// re-verified against the store even though identity resolution has
// already run.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, description *string) (*models.TaskDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve task owner", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("task owner does not exist", "user_id", userID)
		return nil, ErrTaskAccessDenied
	}

	task, err := s.writer.Save(ctx, userID, title, description)
	if err != nil {
		logger.Log.Errorw("failed to save task", "user_id", userID, "err", err)
		return nil, mapIntegrityViolation(err)
	}

	s.publishEvent(ctx, task.ID, userID, "created")

	return task, nil
}

// Get returns the task if it exists and belongs to userID.
func (s *TaskService) Get(ctx context.Context, taskID, userID int64) (*models.TaskDB, error) {
	return s.resolveOwned(ctx, taskID, userID)
}

// List returns the tasks owned by userID, paginated by skip/limit.
func (s *TaskService) List(ctx context.Context, userID int64, skip, limit int) ([]models.TaskDB, error) {
	tasks, err := s.reader.ListByUserID(ctx, userID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list tasks", "user_id", userID, "err", err)
		return nil, err
	}
	return tasks, nil
}

// Update applies the supplied fields of upd to the task; nil fields are
// left untouched. updated_at is refreshed by the repository.
func (s *TaskService) Update(ctx context.Context, taskID, userID int64, upd models.TaskUpdate) (*models.TaskDB, error) {
	task, err := s.resolveOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.DescriptionSet {
		task.Description = upd.Description
	}
	if upd.IsCompleted != nil {
		task.IsCompleted = *upd.IsCompleted
	}

	updated, err := s.writer.Update(ctx, task)
	if err != nil {
		logger.Log.Errorw("failed to update task", "task_id", taskID, "err", err)
		return nil, err
	}

	s.publishEvent(ctx, taskID, userID, "updated")

	return updated, nil
}

// Delete removes the task if it exists and belongs to userID.
func (s *TaskService) Delete(ctx context.Context, taskID, userID int64) error {
	if _, err := s.resolveOwned(ctx, taskID, userID); err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, taskID); err != nil {
		logger.Log.Errorw("failed to delete task", "task_id", taskID, "err", err)
		return err
	}

	s.publishEvent(ctx, taskID, userID, "deleted")

	return nil
}
