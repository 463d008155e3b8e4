package rdb

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
	"gorm.io/gorm"
)

// ProjectRepository is a GORM-backed implementation of domain.ProjectRepository.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func projectToRecord(p *model.Project) *ProjectRecord {
	return &ProjectRecord{
		ID:          p.ID,
		Title:       p.Title,
		Icon:        p.Icon,
		WorkspaceID: p.WorkspaceID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func projectToModel(r *ProjectRecord) *model.Project {
	return &model.Project{
		ID:          r.ID,
		Title:       r.Title,
		Icon:        r.Icon,
		WorkspaceID: r.WorkspaceID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	rec := projectToRecord(p)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	p.ID = rec.ID
	return nil
}

func (r *ProjectRepository) Get(ctx context.Context, id int64) (*model.Project, error) {
	var rec ProjectRecord
	err := r.db.WithContext(ctx).Select(projectColumns).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProjectNotFound
		}
		return nil, err
	}
	return projectToModel(&rec), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	var recs []ProjectRecord
	if err := r.db.WithContext(ctx).Select(projectColumns).Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return projectsToModels(recs), nil
}

func (r *ProjectRepository) ListByWorkspace(ctx context.Context, workspaceID int64) ([]*model.Project, error) {
	var recs []ProjectRecord
	err := r.db.WithContext(ctx).Select(projectColumns).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return projectsToModels(recs), nil
}

// GetByWorkspaceTitle looks up the sibling occupying the (workspace, title)
// unique key. Absence returns (nil, nil); the caller decides whether that
// is an error.
func (r *ProjectRepository) GetByWorkspaceTitle(ctx context.Context, workspaceID int64, title string) (*model.Project, error) {
	var rec ProjectRecord
	err := r.db.WithContext(ctx).Select(projectColumns).
		Where("workspace_id = ? AND title = ?", workspaceID, title).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return projectToModel(&rec), nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	// WorkspaceID is immutable and deliberately excluded from the update set.
	res := r.db.WithContext(ctx).Model(&ProjectRecord{}).Where("id = ?", p.ID).
		Updates(map[string]any{"title": p.Title, "icon": p.Icon, "updated_at": p.UpdatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&ProjectRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}
	return nil
}

func projectsToModels(recs []ProjectRecord) []*model.Project {
	out := make([]*model.Project, 0, len(recs))
	for i := range recs {
		out = append(out, projectToModel(&recs[i]))
	}
	return out
}

// Ensure interface satisfaction.
var _ domain.ProjectRepository = (*ProjectRepository)(nil)
