package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "taskman/internal/delivery/context"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input and persists a new task owned by identity.
func (srv *taskService) Create(ctx context.Context, identity *entity.User, input *usecase.CreateTaskInput) (*entity.Task, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	status := entity.TaskStatus(input.Status)
	if input.Status == "" {
		status = entity.TaskStatusPending
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of: pending, in_progress, completed")
	}

	priority := entity.TaskPriority(input.Priority)
	if input.Priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("priority must be one of: low, medium, high")
	}

	newTask := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		OwnerID:     identity.ID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.TaskRepo().Create(ctx, newTask)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Int64("ownerID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("taskID", newTask.ID), slog.Int64("ownerID", identity.ID))

	return newTask, nil
}

// List returns the caller's own tasks ordered by id. Tasks owned by other
// users are never visible, so an empty result is not an error.
func (srv *taskService) List(ctx context.Context, identity *entity.User, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	tasks, err := srv.taskRepo.ListByOwner(ctx, identity.ID, skip, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Int64("ownerID", identity.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Get returns a single task after the ownership check. Existence is checked
// before ownership so a missing task and a foreign task are distinguishable:
// the former is not found, the latter is forbidden.
func (srv *taskService) Get(ctx context.Context, identity *entity.User, taskID int64) (*entity.Task, error) {
	return srv.findOwnedTask(ctx, identity, taskID)
}

// Update applies the provided fields to an owned task. Absent fields keep
// their stored values; ownership and creation time are never modified.
func (srv *taskService) Update(ctx context.Context, identity *entity.User, taskID int64, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("task does not exist")
			}

			return errors.Wrap(err, "failed to find task for update")
		}
		if task.OwnerID != identity.ID {
			return domainerrors.ErrTaskOwnershipViolation.WrapMessage("task belongs to another user")
		}

		if input.Title != nil {
			if err := validateTitle(*input.Title); err != nil {
				return err
			}
			task.Title = *input.Title
		}
		if input.Description != nil {
			if err := validateDescription(*input.Description); err != nil {
				return err
			}
			task.Description = *input.Description
		}
		if input.Status != nil {
			status := entity.TaskStatus(*input.Status)
			if !status.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("status must be one of: pending, in_progress, completed")
			}
			task.Status = status
		}
		if input.Priority != nil {
			priority := entity.TaskPriority(*input.Priority)
			if !priority.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("priority must be one of: low, medium, high")
			}
			task.Priority = priority
		}
		if input.DueDate != nil {
			task.DueDate = input.DueDate
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return errors.Wrap(err, "failed to update task")
		}

		updated = task

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute task update", slog.Int64("taskID", taskID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Task updated", slog.Int64("taskID", taskID))

	return updated, nil
}

// Delete removes an owned task. Repeating a delete reports not found.
func (srv *taskService) Delete(ctx context.Context, identity *entity.User, taskID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("task does not exist")
			}

			return errors.Wrap(err, "failed to find task for delete")
		}
		if task.OwnerID != identity.ID {
			return domainerrors.ErrTaskOwnershipViolation.WrapMessage("task belongs to another user")
		}

		// The row can vanish between the lookup and the delete.
		if err := taskRepo.Delete(ctx, taskID); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return domainerrors.ErrTaskNotFound.WrapMessage("task does not exist")
			}

			return errors.Wrap(err, "failed to delete task")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute task delete", slog.Int64("taskID", taskID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("taskID", taskID))

	return nil
}

func (srv *taskService) findOwnedTask(ctx context.Context, identity *entity.User, taskID int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task does not exist")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}
	if task.OwnerID != identity.ID {
		return nil, domainerrors.ErrTaskOwnershipViolation.WrapMessage("task belongs to another user")
	}

	return task, nil
}

// Limits are in characters, matching the varchar column widths, so
// multibyte input is measured in runes rather than bytes.
func validateTitle(title string) error {
	if title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if utf8.RuneCountInString(title) > entity.TaskTitleMaxLen {
		return domainerrors.ErrValidationFailed.WithDetails("title must be at most 255 characters")
	}

	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > entity.TaskDescriptionMaxLen {
		return domainerrors.ErrValidationFailed.WithDetails("description must be at most 1000 characters")
	}

	return nil
}
