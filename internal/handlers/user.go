package handlers

import (
	"errors"
	"net/http"

	"github.com/2-Sungyoon/likelion-todolist-BE/internal/dto"
	"github.com/2-Sungyoon/likelion-todolist-BE/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles registration and login.
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary      Register a user
// @Description  Validation failures come back as a field-to-messages map, e.g. {"username": ["username is required"]}.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Candidate user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string][]string
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var fe service.FieldErrors
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, fe)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": dto.UserResponse{ID: user.ID, Username: user.Username}})
}

// Login godoc
// @Summary      Log in
// @Description  Returns the user id only; no session or token is issued. A wrong password is a plain not-found.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{UserID: user.ID})
}
