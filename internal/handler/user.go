package handler

import (
	"net/http"

	"github.com/templui/goalsetter/internal/apperr"
	"github.com/templui/goalsetter/internal/ctxkeys"
	"github.com/templui/goalsetter/internal/model"
	"github.com/templui/goalsetter/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

// Register handles POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		return err
	}

	user, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return h.writeWithToken(w, http.StatusCreated, user)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		return err
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return h.writeWithToken(w, http.StatusOK, user)
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) error {
	user, err := h.userService.ByID(r.Context(), ctxkeys.UserID(r.Context()))
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *UserHandler) writeWithToken(w http.ResponseWriter, status int, user *model.User) error {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		return apperr.Internal(err)
	}

	return writeJSON(w, status, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	})
}
