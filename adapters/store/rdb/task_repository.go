package rdb

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
	"gorm.io/gorm"
)

// TaskRepository is a GORM-backed implementation of domain.TaskRepository.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func taskToRecord(t *model.Task) *TaskRecord {
	return &TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func taskToModel(r *TaskRecord) *model.Task {
	return &model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ProjectID:   r.ProjectID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *model.Task) error {
	rec := taskToRecord(t)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	t.ID = rec.ID
	return nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	var rec TaskRecord
	err := r.db.WithContext(ctx).Select(taskColumns).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrTaskNotFound
		}
		return nil, err
	}
	return taskToModel(&rec), nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*model.Task, error) {
	var recs []TaskRecord
	if err := r.db.WithContext(ctx).Select(taskColumns).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return tasksToModels(recs), nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.Task, error) {
	var recs []TaskRecord
	err := r.db.WithContext(ctx).Select(taskColumns).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return tasksToModels(recs), nil
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	res := r.db.WithContext(ctx).Model(&TaskRecord{}).Where("id = ?", t.ID).
		Updates(map[string]any{"title": t.Title, "description": t.Description, "updated_at": t.UpdatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&TaskRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}
	return nil
}

func tasksToModels(recs []TaskRecord) []*model.Task {
	out := make([]*model.Task, 0, len(recs))
	for i := range recs {
		out = append(out, taskToModel(&recs[i]))
	}
	return out
}

// Ensure interface satisfaction.
var _ domain.TaskRepository = (*TaskRepository)(nil)
