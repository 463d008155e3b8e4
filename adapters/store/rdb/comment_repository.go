package rdb

import (
	"context"
	"errors"

	"github.com/taskhive/taskhive/domain"
	"github.com/taskhive/taskhive/domain/model"
	"gorm.io/gorm"
)

// CommentRepository is a GORM-backed implementation of domain.CommentRepository.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func commentToRecord(c *model.Comment) *CommentRecord {
	return &CommentRecord{
		ID:        c.ID,
		Content:   c.Content,
		AuthorID:  c.AuthorID,
		TaskID:    c.TaskID,
		Edited:    c.Edited,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func commentToModel(r *CommentRecord) *model.Comment {
	c := &model.Comment{
		ID:        r.ID,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		TaskID:    r.TaskID,
		Edited:    r.Edited,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Author != nil {
		c.Author = &model.UserView{
			ID:        r.Author.ID,
			Username:  r.Author.Username,
			Email:     r.Author.Email,
			AvatarURL: r.Author.AvatarURL,
		}
	}
	return c
}

// withAuthor preloads the public subset of the authoring user.
func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("Author", func(db *gorm.DB) *gorm.DB {
		return db.Select(userViewColumns)
	})
}

func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	rec := commentToRecord(c)
	rec.Edited = false // write-once-false on creation
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	c.ID = rec.ID
	c.Edited = false
	return nil
}

func (r *CommentRepository) Get(ctx context.Context, id int64) (*model.Comment, error) {
	var rec CommentRecord
	err := withAuthor(r.db.WithContext(ctx).Select(commentColumns)).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCommentNotFound
		}
		return nil, err
	}
	return commentToModel(&rec), nil
}

func (r *CommentRepository) List(ctx context.Context) ([]*model.Comment, error) {
	var recs []CommentRecord
	err := withAuthor(r.db.WithContext(ctx).Select(commentColumns)).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return commentsToModels(recs), nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID int64) ([]*model.Comment, error) {
	var recs []CommentRecord
	err := withAuthor(r.db.WithContext(ctx).Select(commentColumns)).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return commentsToModels(recs), nil
}

// Update persists the comment's content and forces the edited flag true,
// regardless of its prior value.
func (r *CommentRepository) Update(ctx context.Context, c *model.Comment) error {
	res := r.db.WithContext(ctx).Model(&CommentRecord{}).Where("id = ?", c.ID).
		Updates(map[string]any{"content": c.Content, "edited": true, "updated_at": c.UpdatedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrCommentNotFound
	}
	c.Edited = true
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&CommentRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

// WorkspaceID walks comment → task → project → workspace. A broken chain at
// any hop (including a missing comment) yields (nil, nil), not an error.
func (r *CommentRepository) WorkspaceID(ctx context.Context, commentID int64) (*int64, error) {
	var workspaceID int64
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("projects.workspace_id").
		Joins("JOIN tasks ON tasks.id = comments.task_id").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("comments.id = ?", commentID).
		Take(&workspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspaceID, nil
}

func commentsToModels(recs []CommentRecord) []*model.Comment {
	out := make([]*model.Comment, 0, len(recs))
	for i := range recs {
		out = append(out, commentToModel(&recs[i]))
	}
	return out
}

// Ensure interface satisfaction.
var _ domain.CommentRepository = (*CommentRepository)(nil)
