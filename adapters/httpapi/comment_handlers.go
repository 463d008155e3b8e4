package httpapi

import (
	"net/http"

	"github.com/taskhive/taskhive/domain/model"
	"github.com/taskhive/taskhive/usecase/comment"
)

func (h *handler) listComments(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Comment.List(r.Context(), &comment.ListInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comments found", out.Comments)
}

func (h *handler) listTaskComments(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseID(r, "taskID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Comment.ListByTask(r.Context(), &comment.ListByTaskInput{TaskID: taskID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comments found", out.Comments)
}

func (h *handler) getComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "commentID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Comment.Get(r.Context(), &comment.GetInput{CommentID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment found", out.Comment)
}

func (h *handler) createComment(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseID(r, "taskID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Content  string `json:"content"`
		AuthorID int64  `json:"author_id"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Comment.Create(r.Context(), &comment.CreateInput{
		Content:  payload.Content,
		AuthorID: payload.AuthorID,
		TaskID:   taskID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Comment created", out.Comment)
}

func (h *handler) updateComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "commentID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var payload struct {
		Content *string `json:"content"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.Comment.Update(r.Context(), &comment.UpdateInput{
		CommentID: id,
		Content:   payload.Content,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment updated", out.Comment)
}

func (h *handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "commentID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Comment.Delete(r.Context(), &comment.DeleteInput{CommentID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Comment deleted", out.Comment)
}

func (h *handler) resolveCommentWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "commentID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Comment.ResolveWorkspace(r.Context(), &comment.ResolveWorkspaceInput{CommentID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if out.WorkspaceID == nil {
		h.respondError(w, r, model.ErrWorkspaceNotFound)
		return
	}
	writeSuccess(w, http.StatusOK, "Workspace found", out)
}
