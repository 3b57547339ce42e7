package handlers

import (
	"errors"
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AdminHandler serves account provisioning for admins.
type AdminHandler struct {
	service   services.UserService
	validator *validator.Validate
}

func NewAdminHandler(service services.UserService, validate *validator.Validate) *AdminHandler {
	return &AdminHandler{service: service, validator: validate}
}

// CreateUser godoc
// @Summary      Create a recruiter or admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        user body      dto.AdminCreateUserRequest true  "Account details"
// @Success      201  {object}  dto.UserEnvelope "Account created"
// @Failure      400  {object}  map[string]string "Validation failed or user already exists"
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Failure      403  {object}  map[string]string "Forbidden"
// @Router       /admin/users [post]
// @Security     BearerAuth
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.CreateByAdmin(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			respondMessage(c, http.StatusBadRequest, validationMessage(err))
		case errors.Is(err, services.ErrConflict):
			respondMessage(c, http.StatusBadRequest, "User already exists")
		default:
			respondInternal(c, err, "Failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.UserEnvelope{User: MapUserModelToUserResponse(user)})
}
