package httpapi

import (
	"net/http"

	"github.com/taskhive/taskhive/usecase/user"
)

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.User.List(r.Context(), &user.ListInput{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Users found", out.Users)
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.User.Get(r.Context(), &user.GetInput{UserID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User found", out.User)
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	out, err := h.uc.User.Create(r.Context(), &user.CreateInput{
		Username:  payload.Username,
		Email:     payload.Email,
		AvatarURL: payload.AvatarURL,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User created", out.User)
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "userID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.User.Delete(r.Context(), &user.DeleteInput{UserID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, "User deleted", out.User)
}
