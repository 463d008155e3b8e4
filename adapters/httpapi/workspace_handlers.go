package httpapi

import (
	"net/http"

	"github.com/taskhive/taskhive/usecase/workspace"
)

func (h *handler) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Workspace.List(r.Context(), &workspace.ListInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Workspaces found", out.Workspaces)
}

func (h *handler) getWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "workspaceID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Workspace.Get(r.Context(), &workspace.GetInput{WorkspaceID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Workspace found", out.Workspace)
}

func (h *handler) createWorkspace(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Workspace.Create(r.Context(), &workspace.CreateInput{Name: payload.Name})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Workspace created", out.Workspace)
}

func (h *handler) updateWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "workspaceID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Name *string `json:"name"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Workspace.Update(r.Context(), &workspace.UpdateInput{
		WorkspaceID: id,
		Name:        payload.Name,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Workspace updated", out.Workspace)
}

func (h *handler) deleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "workspaceID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Workspace.Delete(r.Context(), &workspace.DeleteInput{WorkspaceID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Workspace deleted", out.Workspace)
}
