// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a single task by its unique ID, regardless of owner.
func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// ListByOwner retrieves the tasks owned by the given user in id order.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by owner")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// Create persists a new task entity to the database.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("task owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	// Update the task entity with the generated ID and timestamps
	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update persists the full state of an existing task entity.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Save(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update task")
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Delete removes a task by its ID.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	// If no rows were affected, the task was already gone. A repeated delete
	// must fail, not silently succeed.
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		Priority:    entity.TaskPriority(data.Priority),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status.String(),
		Priority:    data.Priority.String(),
		DueDate:     data.DueDate,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
	}
}
