package handler

import (
	"net/http"
	"net/url"

	"github.com/msomdec/board/internal/service"
)

// UserHandler serves user registration and lookup.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleRegister creates a user from a JSON body.
func (h *UserHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, r, "decode user", err)
		return
	}

	u, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, "register user", err)
		return
	}
	w.Header().Set("Location", "/api/users/"+url.PathEscape(u.Username))
	writeJSON(w, http.StatusCreated, toUserDTO(u))
}

// HandleGet returns the user named in the path.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, "get user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(u))
}
