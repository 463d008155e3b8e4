package httpapi

import (
	"net/http"

	"github.com/taskhive/taskhive/usecase/project"
)

func (h *handler) listProjects(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Project.List(r.Context(), &project.ListInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Projects found", out.Projects)
}

func (h *handler) listWorkspaceProjects(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := parseID(r, "workspaceID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Project.ListByWorkspace(r.Context(), &project.ListByWorkspaceInput{WorkspaceID: workspaceID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Projects found", out.Projects)
}

func (h *handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "projectID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Project.Get(r.Context(), &project.GetInput{ProjectID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Project found", out.Project)
}

// createProject needs the workspace id from the path because the project
// schema keeps a reference to its owning workspace.
func (h *handler) createProject(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := parseID(r, "workspaceID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Title string `json:"title"`
		Icon  string `json:"icon"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Project.Create(r.Context(), &project.CreateInput{
		WorkspaceID: workspaceID,
		Title:       payload.Title,
		Icon:        payload.Icon,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Project created", out.Project)
}

// updateProject does not take a workspace id: the workspace reference is
// immutable after creation.
func (h *handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "projectID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Title *string `json:"title"`
		Icon  *string `json:"icon"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Project.Update(r.Context(), &project.UpdateInput{
		ProjectID: id,
		Title:     payload.Title,
		Icon:      payload.Icon,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Project updated", out.Project)
}

func (h *handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "projectID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Project.Delete(r.Context(), &project.DeleteInput{ProjectID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Project deleted", out.Project)
}
