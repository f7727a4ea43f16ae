package handlers

import (
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type AvatarHandler struct {
	avatarService *services.AvatarService
	userService   *services.UserService
	storage       *services.StorageService
	bucket        string
}

func NewAvatarHandler(avatarService *services.AvatarService, userService *services.UserService, storage *services.StorageService, bucket string) *AvatarHandler {
	return &AvatarHandler{
		avatarService: avatarService,
		userService:   userService,
		storage:       storage,
		bucket:        bucket,
	}
}

// ListActiveAvatars godoc
// @Summary      List selectable avatars
// @Tags         avatars
// @Produce      json
// @Success      200 {array} Avatar
// @Router       /api/v1/avatars/active [get]
func (h *AvatarHandler) ListActiveAvatars(c *gin.Context) {
	avatars, err := h.avatarService.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, avatars)
}

// ListAvatars godoc
// @Summary      List all avatars including inactive ones
// @Tags         avatars
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Avatar
// @Router       /api/v1/avatars [get]
func (h *AvatarHandler) ListAvatars(c *gin.Context) {
	avatars, err := h.avatarService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, avatars)
}

// GetAvatar godoc
// @Summary      Get an avatar
// @Tags         avatars
// @Produce      json
// @Param        id path int true "Avatar ID"
// @Success      200 {object} Avatar
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/avatars/{id} [get]
func (h *AvatarHandler) GetAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid avatar id"})
		return
	}

	avatar, err := h.avatarService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, avatar)
}

// CreateAvatar godoc
// @Summary      Create an avatar
// @Description  Multipart form: name and an image file
// @Tags         avatars
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} Avatar
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/avatars [post]
func (h *AvatarHandler) CreateAvatar(c *gin.Context) {
	name := c.PostForm("name")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "avatar image file is required"})
		return
	}

	storagePath, imageURL, err := h.storage.Upload(h.bucket, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload image: " + err.Error()})
		return
	}

	avatar, err := h.avatarService.Create(name, imageURL, storagePath)
	if err != nil {
		_ = h.storage.Remove(h.bucket, storagePath)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, avatar)
}

// UpdateAvatar godoc
// @Summary      Update an avatar
// @Description  Multipart form: optional name, is_active and image file
// @Tags         avatars
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Avatar ID"
// @Success      200 {object} Avatar
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/avatars/{id} [put]
func (h *AvatarHandler) UpdateAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid avatar id"})
		return
	}

	existing, err := h.avatarService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var input services.UpdateAvatarInput
	if name := c.PostForm("name"); name != "" {
		input.Name = &name
	}
	if raw := c.PostForm("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "is_active must be true or false"})
			return
		}
		input.IsActive = &active
	}

	if file, err := c.FormFile("image"); err == nil {
		storagePath, imageURL, err := h.storage.Upload(h.bucket, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload image: " + err.Error()})
			return
		}
		_ = h.storage.Remove(h.bucket, existing.StoragePath)
		input.ImageURL = &imageURL
		input.StoragePath = &storagePath
	}

	avatar, err := h.avatarService.Update(uint(id), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, avatar)
}

// DeleteAvatar godoc
// @Summary      Delete an avatar
// @Tags         avatars
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Avatar ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/avatars/{id} [delete]
func (h *AvatarHandler) DeleteAvatar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid avatar id"})
		return
	}

	storagePath, err := h.avatarService.Delete(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	_ = h.storage.Remove(h.bucket, storagePath)

	c.JSON(http.StatusOK, MessageResponse{Message: "Avatar deleted successfully"})
}

type SelectAvatarRequest struct {
	AvatarID uint `json:"avatar_id" binding:"required"`
}

// SelectAvatar godoc
// @Summary      Set the current user's avatar
// @Tags         avatars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SelectAvatarRequest true "Avatar selection"
// @Success      200 {object} User
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/profile/avatar [put]
func (h *AvatarHandler) SelectAvatar(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req SelectAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.SelectAvatar(userID, req.AvatarID)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrAvatarNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// RemoveAvatar godoc
// @Summary      Clear the current user's avatar
// @Tags         avatars
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Router       /api/v1/auth/profile/avatar [delete]
func (h *AvatarHandler) RemoveAvatar(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.userService.RemoveAvatar(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
