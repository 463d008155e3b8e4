package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/adapters/store/inmem"
	"github.com/taskhive/taskhive/domain/model"
	"github.com/taskhive/taskhive/internal/logging"
	"github.com/taskhive/taskhive/usecase/comment"
	"github.com/taskhive/taskhive/usecase/project"
	"github.com/taskhive/taskhive/usecase/task"
	"github.com/taskhive/taskhive/usecase/user"
	"github.com/taskhive/taskhive/usecase/workspace"
)

// newTestServer backs the full route table with a seeded memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	u := &model.User{Username: "ann", Email: "ann@example.com"}
	require.NoError(t, store.UserRepo.Create(ctx, u))
	ws := &model.Workspace{Name: "hq"}
	require.NoError(t, store.WorkspaceRepo.Create(ctx, ws))
	p := &model.Project{Title: "Board", WorkspaceID: ws.ID}
	require.NoError(t, store.ProjectRepo.Create(ctx, p))
	tk := &model.Task{Title: "Ship it", ProjectID: p.ID}
	require.NoError(t, store.TaskRepo.Create(ctx, tk))
	c := &model.Comment{Content: "hi", AuthorID: u.ID, TaskID: tk.ID}
	require.NoError(t, store.CommentRepo.Create(ctx, c))

	uc := &UseCases{
		Workspace: &workspace.UseCase{Repos: &workspace.Repos{Workspace: store.WorkspaceRepo}},
		Project:   &project.UseCase{Repos: &project.Repos{Workspace: store.WorkspaceRepo, Project: store.ProjectRepo}},
		Task:      &task.UseCase{Repos: &task.Repos{Project: store.ProjectRepo, Task: store.TaskRepo}},
		Comment:   &comment.UseCase{Repos: &comment.Repos{Task: store.TaskRepo, User: store.UserRepo, Comment: store.CommentRepo}},
		User:      &user.UseCase{Repos: &user.Repos{User: store.UserRepo}},
	}

	log, err := logging.NewWithWriter("text", slog.LevelError, io.Discard)
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(uc, log))
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Content json.RawMessage `json:"content"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestCreateProjectReturnsEnvelope(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/workspaces/1/projects", `{"title":"Roadmap","icon":"🗺"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.StatusCreated, env.Status)
	assert.Equal(t, "Project created", env.Message)

	var p model.Project
	require.NoError(t, json.Unmarshal(env.Content, &p))
	assert.Equal(t, "Roadmap", p.Title)
	assert.Equal(t, int64(1), p.WorkspaceID)
	assert.NotZero(t, p.ID)
}

func TestCreateProjectConflicts(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/workspaces/1/projects", `{"title":"Board"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Project already exists", env.Message)
	assert.NotEmpty(t, env.Error)
}

func TestListProjectsMissingWorkspace(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/workspaces/99/projects", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Workspace not found", env.Message)
}

func TestGetProjectNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/projects/999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Project not found", env.Message)
}

func TestMalformedIDRejected(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/projects/abc", "/tasks/0", "/comments/-4"} {
		resp, env := doJSON(t, http.MethodGet, srv.URL+path, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "Malformed identifier", env.Message, path)
	}
}

func TestCommentCreateAndUpdate(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/tasks/1/comments", `{"content":"nice","author_id":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var c model.Comment
	require.NoError(t, json.Unmarshal(env.Content, &c))
	assert.False(t, c.Edited)
	require.NotNil(t, c.Author)
	assert.Equal(t, "ann", c.Author.Username)

	resp, env = doJSON(t, http.MethodPut, srv.URL+"/comments/2", `{"content":"nicer"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Content, &c))
	assert.True(t, c.Edited)
	assert.Equal(t, "nicer", c.Content)
}

func TestResolveCommentWorkspace(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/comments/1/workspace", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Workspace found", env.Message)

	var out struct {
		WorkspaceID *int64 `json:"workspace_id"`
	}
	require.NoError(t, json.Unmarshal(env.Content, &out))
	require.NotNil(t, out.WorkspaceID)
	assert.Equal(t, int64(1), *out.WorkspaceID)

	// Break the chain and the resolution turns into a 404.
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/projects/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/comments/1/workspace", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Workspace not found", env.Message)
}

func TestDeleteReturnsPriorShape(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodDelete, srv.URL+"/tasks/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Task deleted", env.Message)

	var tk model.Task
	require.NoError(t, json.Unmarshal(env.Content, &tk))
	assert.Equal(t, "Ship it", tk.Title)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidBodyRejected(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/workspaces", `{"name":"x","bogus":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", env.Message)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
