package handlers

import (
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required" example:"jane@example.com"`
	Message string `json:"message" binding:"required" example:"I found a typo in one of the quizzes."`
}

// SubmitContact godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "Contact message"
// @Success      201 {object} ContactMessage
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/contact/submit [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.contactService.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListContacts godoc
// @Summary      List all contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ContactMessage
// @Router       /api/v1/contact [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	messages, err := h.contactService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// ListUnreadContacts godoc
// @Summary      List unread contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} ContactMessage
// @Router       /api/v1/contact/unread [get]
func (h *ContactHandler) ListUnreadContacts(c *gin.Context) {
	messages, err := h.contactService.GetUnread()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// UnreadCount godoc
// @Summary      Count unread contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int64
// @Router       /api/v1/contact/unread-count [get]
func (h *ContactHandler) UnreadCount(c *gin.Context) {
	count, err := h.contactService.UnreadCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// GetContact godoc
// @Summary      Get a contact message
// @Description  Fetching a message does not mark it read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200 {object} ContactMessage
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contact/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid message id"})
		return
	}

	message, err := h.contactService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

// MarkContactRead godoc
// @Summary      Mark a contact message read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200 {object} ContactMessage
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contact/{id}/read [patch]
func (h *ContactHandler) MarkContactRead(c *gin.Context) {
	h.setRead(c, true)
}

// MarkContactUnread godoc
// @Summary      Mark a contact message unread
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200 {object} ContactMessage
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contact/{id}/unread [patch]
func (h *ContactHandler) MarkContactUnread(c *gin.Context) {
	h.setRead(c, false)
}

func (h *ContactHandler) setRead(c *gin.Context, read bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid message id"})
		return
	}

	message, err := h.contactService.SetRead(uint(id), read)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteContact godoc
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/contact/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid message id"})
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Contact message deleted successfully"})
}
