package handlers

import (
	"errors"
	"net/http"

	"ats-api/internal/api/middleware"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler serves signup, login and the current user.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Signup godoc
// @Summary      Register a student account
// @Description  Creates a student and returns a token. Any role other than student is rejected.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.SignupRequest true  "Signup details"
// @Success      201  {object}  dto.AuthResponse "Account created"
// @Failure      400  {object}  map[string]string "Validation failed or user already exists"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			respondMessage(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, services.ErrConflict):
			respondMessage(c, http.StatusBadRequest, "User already exists")
		default:
			respondInternal(c, err, "Failed to create account")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: MapUserModelToUserResponse(user)})
}

// Login godoc
// @Summary      Log in
// @Description  Exchanges email, password and role for a token. All credential failures look the same.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Login credentials"
// @Success      200  {object}  dto.AuthResponse "Logged in"
// @Failure      400  {object}  map[string]string "Validation failed"
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Failure      503  {object}  map[string]string "Database unavailable"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnavailable):
			respondMessage(c, http.StatusServiceUnavailable, "Database unavailable")
		case errors.Is(err, services.ErrInvalidCredentials):
			respondMessage(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			respondInternal(c, err, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: MapUserModelToUserResponse(user)})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserEnvelope "Authenticated user"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, dto.UserEnvelope{User: MapUserModelToUserResponse(user)})
}
