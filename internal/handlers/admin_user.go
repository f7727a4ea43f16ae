package handlers

import (
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminUserHandler struct {
	userService *services.UserService
}

func NewAdminUserHandler(userService *services.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"admin"`
}

// ListUsers godoc
// @Summary      List users
// @Description  Filter by role and search by username substring
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role query string false "Role filter (user|admin)"
// @Param        search query string false "Username search"
// @Success      200 {array} User
// @Failure      403 {object} ErrorResponse
// @Router       /api/v1/admin/users [get]
func (h *AdminUserHandler) ListUsers(c *gin.Context) {
	filter := services.UserFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}

	users, err := h.userService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users, "count": len(users)})
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} User
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/users/{id} [get]
func (h *AdminUserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.userService.GetByID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Admins cannot delete themselves or other admins
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/users/{id} [delete]
func (h *AdminUserHandler) DeleteUser(c *gin.Context) {
	adminID := c.GetUint("user_id")
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	deleted, err := h.userService.Delete(uint(userID), adminID)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrUserNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "user successfully deleted",
		"deleted_user_id":  deleted.ID,
		"deleted_username": deleted.Username,
	})
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Param        request body UpdateRoleRequest true "New role"
// @Success      200 {object} User
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/users/{id}/role [put]
func (h *AdminUserHandler) UpdateUserRole(c *gin.Context) {
	adminID := c.GetUint("user_id")
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateRole(uint(userID), adminID, req.Role)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrUserNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
