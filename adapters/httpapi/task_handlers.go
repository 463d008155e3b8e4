package httpapi

import (
	"net/http"

	"github.com/taskhive/taskhive/usecase/task"
)

func (h *handler) listTasks(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Task.List(r.Context(), &task.ListInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Tasks found", out.Tasks)
}

func (h *handler) listProjectTasks(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Task.ListByProject(r.Context(), &task.ListByProjectInput{ProjectID: projectID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Tasks found", out.Tasks)
}

func (h *handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Task.Get(r.Context(), &task.GetInput{TaskID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Task found", out.Task)
}

func (h *handler) createTask(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Task.Create(r.Context(), &task.CreateInput{
		ProjectID:   projectID,
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Task created", out.Task)
}

func (h *handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Task.Update(r.Context(), &task.UpdateInput{
		TaskID:      id,
		Title:       payload.Title,
		Description: payload.Description,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Task updated", out.Task)
}

func (h *handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "taskID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Task.Delete(r.Context(), &task.DeleteInput{TaskID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Task deleted", out.Task)
}
