package rdb

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
	"gorm.io/gorm"
)

// WorkspaceRepository is a GORM-backed implementation of domain.WorkspaceRepository.
type WorkspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

func workspaceToRecord(w *model.Workspace) *WorkspaceRecord {
	return &WorkspaceRecord{
		ID:        w.ID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func workspaceToModel(r *WorkspaceRecord) *model.Workspace {
	return &model.Workspace{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (r *WorkspaceRepository) Create(ctx context.Context, w *model.Workspace) error {
	rec := workspaceToRecord(w)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	w.ID = rec.ID
	return nil
}

func (r *WorkspaceRepository) Get(ctx context.Context, id int64) (*model.Workspace, error) {
	var rec WorkspaceRecord
	err := r.db.WithContext(ctx).Select(workspaceColumns).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspaceToModel(&rec), nil
}

func (r *WorkspaceRepository) List(ctx context.Context) ([]*model.Workspace, error) {
	var recs []WorkspaceRecord
	if err := r.db.WithContext(ctx).Select(workspaceColumns).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Workspace, 0, len(recs))
	for i := range recs {
		out = append(out, workspaceToModel(&recs[i]))
	}
	return out, nil
}

func (r *WorkspaceRepository) Update(ctx context.Context, w *model.Workspace) error {
	res := r.db.WithContext(ctx).Model(&WorkspaceRecord{}).Where("id = ?", w.ID).
		Updates(map[string]any{"name": w.Name, "updated_at": w.UpdatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrWorkspaceNotFound
	}
	return nil
}

func (r *WorkspaceRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&WorkspaceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrWorkspaceNotFound
	}
	return nil
}

// Ensure interface satisfaction.
var _ domain.WorkspaceRepository = (*WorkspaceRepository)(nil)
