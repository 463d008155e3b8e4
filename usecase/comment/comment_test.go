package comment

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/taskhive/adapters/store/inmem"
	"github.com/taskhive/taskhive/domain/model"
)

// fixture seeds a user, workspace, project, and task into a fresh memory
// store and returns the wired use case.
func fixture(t *testing.T) (*UseCase, *inmem.Store) {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	u := &model.User{Username: "ann", Email: "ann@example.com"}
	if err := store.UserRepo.Create(ctx, u); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	ws := &model.Workspace{Name: "hq"}
	if err := store.WorkspaceRepo.Create(ctx, ws); err != nil {
		t.Fatalf("seeding workspace: %v", err)
	}
	p := &model.Project{Title: "Board", WorkspaceID: ws.ID}
	if err := store.ProjectRepo.Create(ctx, p); err != nil {
		t.Fatalf("seeding project: %v", err)
	}
	tk := &model.Task{Title: "Ship it", ProjectID: p.ID}
	if err := store.TaskRepo.Create(ctx, tk); err != nil {
		t.Fatalf("seeding task: %v", err)
	}

	uc := &UseCase{Repos: &Repos{
		Task:    store.TaskRepo,
		User:    store.UserRepo,
		Comment: store.CommentRepo,
	}}
	return uc, store
}

func TestCreateChecksReferences(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()

	t.Run("missing task", func(t *testing.T) {
		_, err := uc.Create(ctx, &CreateInput{Content: "hi", AuthorID: 1, TaskID: 99})
		if !errors.Is(err, model.ErrTaskNotFound) {
			t.Fatalf("expected task not-found, got %v", err)
		}
	})

	t.Run("missing author", func(t *testing.T) {
		_, err := uc.Create(ctx, &CreateInput{Content: "hi", AuthorID: 99, TaskID: 1})
		if !errors.Is(err, model.ErrUserNotFound) {
			t.Fatalf("expected user not-found, got %v", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := uc.Create(ctx, &CreateInput{Content: "", AuthorID: 1, TaskID: 1})
		if !errors.Is(err, model.ErrCommentInvalid) {
			t.Fatalf("expected invalid error, got %v", err)
		}
	})
}

func TestCreateEmbedsAuthorView(t *testing.T) {
	uc, _ := fixture(t)
	out, err := uc.Create(context.Background(), &CreateInput{Content: "hi", AuthorID: 1, TaskID: 1})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	c := out.Comment
	if c.Edited {
		t.Fatal("new comment must not be marked edited")
	}
	if c.Author == nil || c.Author.Username != "ann" {
		t.Fatalf("expected embedded author view, got %+v", c.Author)
	}
}

func TestUpdateForcesEdited(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, &CreateInput{Content: "hi", AuthorID: 1, TaskID: 1})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	// An update that changes nothing still marks the comment edited.
	out, err := uc.Update(ctx, &UpdateInput{CommentID: created.Comment.ID})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if !out.Comment.Edited {
		t.Fatal("update must force Edited to true")
	}

	content := "revised"
	out, err = uc.Update(ctx, &UpdateInput{CommentID: created.Comment.ID, Content: &content})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if out.Comment.Content != "revised" || !out.Comment.Edited {
		t.Fatalf("unexpected updated comment: %+v", out.Comment)
	}
}

func TestDeleteReturnsPriorShape(t *testing.T) {
	uc, _ := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, &CreateInput{Content: "hi", AuthorID: 1, TaskID: 1})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	out, err := uc.Delete(ctx, &DeleteInput{CommentID: created.Comment.ID})
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if out.Comment.Content != "hi" {
		t.Fatalf("expected prior shape, got %+v", out.Comment)
	}
	if _, err := uc.Get(ctx, &GetInput{CommentID: created.Comment.ID}); !errors.Is(err, model.ErrCommentNotFound) {
		t.Fatalf("expected comment gone, got %v", err)
	}
}

func TestResolveWorkspace(t *testing.T) {
	uc, store := fixture(t)
	ctx := context.Background()
	created, err := uc.Create(ctx, &CreateInput{Content: "hi", AuthorID: 1, TaskID: 1})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	out, err := uc.ResolveWorkspace(ctx, &ResolveWorkspaceInput{CommentID: created.Comment.ID})
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if out.WorkspaceID == nil || *out.WorkspaceID != 1 {
		t.Fatalf("expected workspace 1, got %v", out.WorkspaceID)
	}

	// Breaking the chain turns the result into nil, not an error.
	if err := store.ProjectRepo.Delete(ctx, 1); err != nil {
		t.Fatalf("deleting project: %v", err)
	}
	out, err = uc.ResolveWorkspace(ctx, &ResolveWorkspaceInput{CommentID: created.Comment.ID})
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if out.WorkspaceID != nil {
		t.Fatalf("expected nil workspace id, got %v", *out.WorkspaceID)
	}

	// Missing comment resolves to nil as well.
	out, err = uc.ResolveWorkspace(ctx, &ResolveWorkspaceInput{CommentID: 999})
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if out.WorkspaceID != nil {
		t.Fatalf("expected nil workspace id for missing comment, got %v", *out.WorkspaceID)
	}
}
