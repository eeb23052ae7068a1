package delivery

import (
	"net/http"

	authdto "notekeeper-backend/internal/auth/dto"
	"notekeeper-backend/internal/auth/usecase"
	"notekeeper-backend/pkg/apperror"
	"notekeeper-backend/pkg/logutil"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles account and session HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// CreateAccount registers a new user
// POST /createAccount
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req authdto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg, ok := validationMessage(err)
		if !ok {
			msg = "invalid request body"
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	user, err := h.authUsecase.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authdto.CreateAccountResponse{
		Message: "Account created successfully",
		User: authdto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Login checks credentials and returns a bearer token
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	// a malformed body is treated like an empty one
	_ = c.ShouldBindJSON(&req)

	if req.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "email is required"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "password is required"})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented bearer token
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token invalidated. User logged out."})
}

// GetUsers returns the profile of the authenticated user
// GET /getUsers
func (h *AuthHandler) GetUsers(c *gin.Context) {
	identity, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.authUsecase.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.ProfileResponse{
		Message: "User fetched successfully",
		User: authdto.Profile{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// RespondError writes err as a JSON message with the matching status.
// Internal errors are logged and replaced with a generic message.
func RespondError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status >= http.StatusInternalServerError {
		logutil.Component(c.Request.Context(), "http").Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.JSON(status, gin.H{"message": apperror.Message(err)})
}
