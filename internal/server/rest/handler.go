package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/eventauth/internal/common"
	"github.com/dmitrijs2005/eventauth/internal/logging"
	"github.com/gin-gonic/gin"
)

// Client-facing messages. Internal error text never reaches the client.
const (
	msgFieldsRequired     = "All fields are required"
	msgPasswordTooLong    = "Password is too long"
	msgEmailExists        = "Email already exists. Please try logging in."
	msgUserNotRegistered  = "User not registered. Please sign up."
	msgInvalidCredentials = "Invalid credentials"
	msgInternal           = "Internal server error"
	msgSignedUp           = "You can log in now"
	msgStoreNotReady      = "store not ready"
)

// UserService is the account logic behind the HTTP endpoints.
type UserService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// ReadinessChecker reports whether the identity store can serve requests.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users  UserService
	ready  ReadinessChecker
	logger logging.Logger
}

func NewHandler(us UserService, rc ReadinessChecker, l logging.Logger) *Handler {
	return &Handler{users: us, ready: rc, logger: l}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var input signupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsRequired})
		return
	}

	if err := h.users.Register(c.Request.Context(), input.Username, input.Email, input.Password); err != nil {
		h.writeError(c, "signup failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgSignedUp})
}

func (h *Handler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsRequired})
		return
	}

	token, err := h.users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.writeError(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Readyz(c *gin.Context) {
	if err := h.ready.Ping(c.Request.Context()); err != nil {
		h.logger.Warn(c.Request.Context(), "store not ready", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": msgStoreNotReady})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// writeError maps service errors onto status codes and fixed messages.
// ErrPasswordTooLong must be checked before ErrorValidation, which it wraps.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, common.ErrPasswordTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgPasswordTooLong})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFieldsRequired})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": msgEmailExists})
	case errors.Is(err, common.ErrUserNotRegistered):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUserNotRegistered})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgInvalidCredentials})
	default:
		h.logger.Error(c.Request.Context(), op, "error", err.Error(), "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}
