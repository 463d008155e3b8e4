package inmem

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/config/seedcfg"
	"github.com/taskhive/taskhive/domain/model"
)

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	WorkspaceRepo *WorkspaceRepository
	ProjectRepo   *ProjectRepository
	TaskRepo      *TaskRepository
	CommentRepo   *CommentRepository
	UserRepo      *UserRepository
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	s := &Store{
		WorkspaceRepo: NewWorkspaceRepository(),
		ProjectRepo:   NewProjectRepository(),
		TaskRepo:      NewTaskRepository(),
		UserRepo:      NewUserRepository(),
	}
	s.CommentRepo = NewCommentRepository(s.UserRepo, s.TaskRepo, s.ProjectRepo)
	return s
}

// LoadFromSeed loads a seed document into the memory store in dependency
// order: users → workspaces → projects → tasks → comments.
func (s *Store) LoadFromSeed(ctx context.Context, root *seedcfg.Root) error {
	now := time.Now().UTC()

	userIDs := make(map[string]int64, len(root.Users))
	for _, su := range root.Users {
		u := &model.User{
			Username:  su.Username,
			Email:     su.Email,
			AvatarURL: su.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.UserRepo.Create(ctx, u); err != nil {
			return err
		}
		userIDs[su.Username] = u.ID
	}

	for _, sw := range root.Workspaces {
		ws := &model.Workspace{Name: sw.Name, CreatedAt: now, UpdatedAt: now}
		if err := s.WorkspaceRepo.Create(ctx, ws); err != nil {
			return err
		}
		for _, sp := range sw.Projects {
			p := &model.Project{
				Title:       sp.Title,
				Icon:        sp.Icon,
				WorkspaceID: ws.ID,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.ProjectRepo.Create(ctx, p); err != nil {
				return err
			}
			for _, st := range sp.Tasks {
				t := &model.Task{
					Title:       st.Title,
					Description: st.Description,
					ProjectID:   p.ID,
					CreatedAt:   now,
					UpdatedAt:   now,
				}
				if err := s.TaskRepo.Create(ctx, t); err != nil {
					return err
				}
				for _, sc := range st.Comments {
					c := &model.Comment{
						Content:   sc.Content,
						AuthorID:  userIDs[sc.Author],
						TaskID:    t.ID,
						CreatedAt: now,
						UpdatedAt: now,
					}
					if err := s.CommentRepo.Create(ctx, c); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// LoadFromFile loads a seed YAML file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	root, err := seedcfg.Load(path)
	if err != nil {
		return err
	}
	return s.LoadFromSeed(ctx, root)
}
