// Package httpapi exposes the board use cases as a REST API. Handlers parse
// request parameters, invoke exactly one use case, and map the outcome to an
// HTTP status and a uniform JSON envelope.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskhive/taskhive/internal/logging"
	"github.com/taskhive/taskhive/usecase/comment"
	"github.com/taskhive/taskhive/usecase/project"
	"github.com/taskhive/taskhive/usecase/task"
	"github.com/taskhive/taskhive/usecase/user"
	"github.com/taskhive/taskhive/usecase/workspace"
)

// UseCases bundles the application use cases exposed over HTTP.
type UseCases struct {
	Workspace *workspace.UseCase
	Project   *project.UseCase
	Task      *task.UseCase
	Comment   *comment.UseCase
	User      *user.UseCase
}

// handler bundles HTTP endpoints for the application use cases.
type handler struct {
	uc *UseCases
}

// NewHandler returns a router exposing the core REST API.
func NewHandler(uc *UseCases, log logging.Logger) http.Handler {
	h := &handler{uc: uc}

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(requestID)
	r.Use(recoverer)

	r.Get("/healthz", h.health)

	r.Route("/workspaces", func(r chi.Router) {
		r.Get("/", h.listWorkspaces)
		r.Post("/", h.createWorkspace)
		r.Route("/{workspaceID}", func(r chi.Router) {
			r.Get("/", h.getWorkspace)
			r.Put("/", h.updateWorkspace)
			r.Delete("/", h.deleteWorkspace)
			r.Get("/projects", h.listWorkspaceProjects)
			r.Post("/projects", h.createProject)
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.listProjects)
		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", h.getProject)
			r.Put("/", h.updateProject)
			r.Delete("/", h.deleteProject)
			r.Get("/tasks", h.listProjectTasks)
			r.Post("/tasks", h.createTask)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.listTasks)
		r.Route("/{taskID}", func(r chi.Router) {
			r.Get("/", h.getTask)
			r.Put("/", h.updateTask)
			r.Delete("/", h.deleteTask)
			r.Get("/comments", h.listTaskComments)
			r.Post("/comments", h.createComment)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", h.listComments)
		r.Route("/{commentID}", func(r chi.Router) {
			r.Get("/", h.getComment)
			r.Put("/", h.updateComment)
			r.Delete("/", h.deleteComment)
			r.Get("/workspace", h.resolveCommentWorkspace)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{userID}", h.getUser)
		r.Delete("/{userID}", h.deleteUser)
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, "OK", nil)
}
