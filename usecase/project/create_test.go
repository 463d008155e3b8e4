package project

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/taskhive/domain/model"
)

func TestCreateRejectsMissingWorkspace(t *testing.T) {
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{},
		Project:   &fakeProjectRepo{},
	}}
	_, err := uc.Create(context.Background(), &CreateInput{WorkspaceID: 7, Title: "Board"})
	if !model.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Fatalf("expected workspace not-found, got %v", err)
	}
}

func TestCreateRejectsDuplicateTitle(t *testing.T) {
	existing := &model.Project{ID: 1, Title: "Board", WorkspaceID: 7}
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{item: &model.Workspace{ID: 7, Name: "ws"}},
		Project:   &fakeProjectRepo{byTitle: existing},
	}}
	_, err := uc.Create(context.Background(), &CreateInput{WorkspaceID: 7, Title: "Board"})
	if !errors.Is(err, model.ErrProjectAlreadyExists) {
		t.Fatalf("expected already-exists error, got %v", err)
	}
	if !model.IsConflict(err) {
		t.Fatalf("expected conflict kind, got %v", err)
	}
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{item: &model.Workspace{ID: 7, Name: "ws"}},
		Project:   &fakeProjectRepo{},
	}}
	_, err := uc.Create(context.Background(), &CreateInput{WorkspaceID: 7, Title: ""})
	if !errors.Is(err, model.ErrProjectInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestCreatePersistsProject(t *testing.T) {
	repo := &fakeProjectRepo{}
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{item: &model.Workspace{ID: 7, Name: "ws"}},
		Project:   repo,
	}}
	out, err := uc.Create(context.Background(), &CreateInput{WorkspaceID: 7, Title: "Board", Icon: "🐝"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if out.Project.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if out.Project.WorkspaceID != 7 {
		t.Fatalf("WorkspaceID = %d, want 7", out.Project.WorkspaceID)
	}
	if out.Project.CreatedAt.IsZero() || out.Project.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
	if repo.created == nil {
		t.Fatal("expected Create to reach the repository")
	}
}

func TestListByWorkspaceChecksParent(t *testing.T) {
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{},
		Project:   &fakeProjectRepo{},
	}}
	_, err := uc.ListByWorkspace(context.Background(), &ListByWorkspaceInput{WorkspaceID: 9})
	if !errors.Is(err, model.ErrWorkspaceNotFound) {
		t.Fatalf("expected workspace not-found, got %v", err)
	}
}

func TestDeleteReturnsPriorShape(t *testing.T) {
	existing := &model.Project{ID: 3, Title: "Board", Icon: "📋", WorkspaceID: 7}
	uc := &UseCase{Repos: &Repos{
		Workspace: &singleWorkspaceRepo{item: &model.Workspace{ID: 7, Name: "ws"}},
		Project:   &fakeProjectRepo{byID: existing},
	}}
	out, err := uc.Delete(context.Background(), &DeleteInput{ProjectID: 3})
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if out.Project.Title != "Board" || out.Project.Icon != "📋" {
		t.Fatalf("expected prior shape, got %+v", out.Project)
	}
}

type singleWorkspaceRepo struct{ item *model.Workspace }

func (r *singleWorkspaceRepo) Create(context.Context, *model.Workspace) error {
	return errors.New("not implemented")
}
func (r *singleWorkspaceRepo) Get(_ context.Context, id int64) (*model.Workspace, error) {
	if r.item != nil && id == r.item.ID {
		return r.item, nil
	}
	return nil, model.ErrWorkspaceNotFound
}
func (r *singleWorkspaceRepo) List(context.Context) ([]*model.Workspace, error) {
	if r.item == nil {
		return []*model.Workspace{}, nil
	}
	return []*model.Workspace{r.item}, nil
}
func (r *singleWorkspaceRepo) Update(context.Context, *model.Workspace) error {
	return errors.New("not implemented")
}
func (r *singleWorkspaceRepo) Delete(context.Context, int64) error {
	return errors.New("not implemented")
}

type fakeProjectRepo struct {
	byID    *model.Project
	byTitle *model.Project
	created *model.Project
}

func (r *fakeProjectRepo) Create(_ context.Context, p *model.Project) error {
	p.ID = 1
	r.created = p
	return nil
}
func (r *fakeProjectRepo) Get(_ context.Context, id int64) (*model.Project, error) {
	if r.byID != nil && id == r.byID.ID {
		return r.byID, nil
	}
	return nil, model.ErrProjectNotFound
}
func (r *fakeProjectRepo) List(context.Context) ([]*model.Project, error) {
	return []*model.Project{}, nil
}
func (r *fakeProjectRepo) ListByWorkspace(context.Context, int64) ([]*model.Project, error) {
	return []*model.Project{}, nil
}
func (r *fakeProjectRepo) GetByWorkspaceTitle(_ context.Context, workspaceID int64, title string) (*model.Project, error) {
	if r.byTitle != nil && r.byTitle.WorkspaceID == workspaceID && r.byTitle.Title == title {
		return r.byTitle, nil
	}
	return nil, nil
}
func (r *fakeProjectRepo) Update(context.Context, *model.Project) error {
	return errors.New("not implemented")
}
func (r *fakeProjectRepo) Delete(context.Context, int64) error { return nil }
