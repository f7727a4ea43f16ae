package handlers

import (
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	faqService *services.FAQService
}

func NewFAQHandler(faqService *services.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

type CreateFAQRequest struct {
	Question string `json:"question" binding:"required" example:"How is the score calculated?"`
	Answer   string `json:"answer" binding:"required" example:"Each correct answer is worth 10 points."`
}

type UpdateFAQRequest struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
}

// ListFAQs godoc
// @Summary      List FAQs
// @Tags         faqs
// @Produce      json
// @Success      200 {array} FAQ
// @Router       /api/v1/faqs [get]
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.faqService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// GetFAQ godoc
// @Summary      Get an FAQ entry
// @Tags         faqs
// @Produce      json
// @Param        id path int true "FAQ ID"
// @Success      200 {object} FAQ
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/faqs/{id} [get]
func (h *FAQHandler) GetFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid FAQ id"})
		return
	}

	faq, err := h.faqService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, faq)
}

// CreateFAQ godoc
// @Summary      Create an FAQ entry
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateFAQRequest true "FAQ data"
// @Success      201 {object} FAQ
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/faqs [post]
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	faq, err := h.faqService.Create(req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ godoc
// @Summary      Update an FAQ entry
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "FAQ ID"
// @Param        request body UpdateFAQRequest true "Fields to update"
// @Success      200 {object} FAQ
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/faqs/{id} [put]
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid FAQ id"})
		return
	}

	var req UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	faq, err := h.faqService.Update(uint(id), req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ godoc
// @Summary      Delete an FAQ entry
// @Tags         faqs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "FAQ ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/faqs/{id} [delete]
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid FAQ id"})
		return
	}

	if err := h.faqService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "FAQ deleted successfully"})
}
