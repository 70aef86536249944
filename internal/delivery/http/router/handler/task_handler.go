package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"taskman/internal/delivery/http/middleware"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// Create handles the task creation request.
func (h *TaskHandler) Create(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("missing identity in request context")
	}

	var input createTaskRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid task payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Create(c.Request().Context(), identity, &usecase.CreateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, newTaskResponse(task))
}

// List returns the caller's tasks with skip/limit pagination.
func (h *TaskHandler) List(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("missing identity in request context")
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return errors.WithStack(err)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return errors.WithStack(err)
	}

	tasks, err := h.uc.List(c.Request().Context(), identity, &usecase.ListTasksInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

// Get returns a single task by id.
func (h *TaskHandler) Get(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("missing identity in request context")
	}

	taskID, err := pathTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Get(c.Request().Context(), identity, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTaskResponse(task))
}

// Update applies a partial update to a task. Registered for both PUT and
// PATCH; absent fields keep their stored values either way.
func (h *TaskHandler) Update(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("missing identity in request context")
	}

	taskID, err := pathTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input updateTaskRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid task payload")
	}

	task, err := h.uc.Update(c.Request().Context(), identity, taskID, &usecase.UpdateTaskInput{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task owned by the caller.
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WrapMessage("missing identity in request context")
	}

	taskID, err := pathTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), identity, taskID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func pathTaskID(c echo.Context) (int64, error) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("task id must be an integer")
	}

	return taskID, nil
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return value, nil
}
