package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	storage     *services.StorageService
	bucket      string
}

func NewQuizHandler(quizService *services.QuizService, storage *services.StorageService, bucket string) *QuizHandler {
	return &QuizHandler{quizService: quizService, storage: storage, bucket: bucket}
}

// ListQuizzes godoc
// @Summary      List all quizzes
// @Tags         quizzes
// @Produce      json
// @Success      200 {array} Quiz
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz godoc
// @Summary      Get a quiz with its questions
// @Tags         quizzes
// @Produce      json
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetByID(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// GetQuizzesByCategory godoc
// @Summary      List quizzes in a category
// @Tags         quizzes
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      200 {array} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/category/{categoryId} [get]
func (h *QuizHandler) GetQuizzesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	quizzes, err := h.quizService.GetByCategory(uint(categoryID))
	if err != nil {
		status := http.StatusInternalServerError
		if err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Multipart form: category_id, title, time_limit, questions (JSON array) and an optional image_cover file
// @Tags         quizzes
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	categoryID, _ := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	title := c.PostForm("title")

	var timeLimit int
	if raw := c.PostForm("time_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "time_limit must be a positive integer"})
			return
		}
		timeLimit = limit
	}

	var questions []services.QuestionInput
	if raw := c.PostForm("questions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &questions); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON format for questions: " + err.Error()})
			return
		}
	}

	input := services.CreateQuizInput{
		CategoryID: uint(categoryID),
		Title:      title,
		TimeLimit:  timeLimit,
		Questions:  questions,
		CreatedBy:  userID,
	}

	if file, err := c.FormFile("image_cover"); err == nil {
		path, url, err := h.storage.Upload(h.bucket, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload cover image: " + err.Error()})
			return
		}
		input.StoragePath = path
		input.ImageCover = url
	}

	quiz, err := h.quizService.Create(input)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Partial multipart update; supplying questions replaces the whole set
// @Tags         quizzes
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	existing, err := h.quizService.GetByID(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var input services.UpdateQuizInput

	if raw := c.PostForm("category_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
			return
		}
		id := uint(id64)
		input.CategoryID = &id
	}
	if title := c.PostForm("title"); title != "" {
		input.Title = &title
	}
	if raw := c.PostForm("time_limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "time_limit must be a positive integer"})
			return
		}
		input.TimeLimit = &limit
	}
	if raw := c.PostForm("questions"); raw != "" {
		var questions []services.QuestionInput
		if err := json.Unmarshal([]byte(raw), &questions); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON format for questions: " + err.Error()})
			return
		}
		input.Questions = questions
	}

	if file, err := c.FormFile("image_cover"); err == nil {
		path, url, err := h.storage.Upload(h.bucket, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload cover image: " + err.Error()})
			return
		}
		// Old object is replaced, not orphaned.
		_ = h.storage.Remove(h.bucket, existing.StoragePath)
		input.StoragePath = &path
		input.ImageCover = &url
	}

	quiz, err := h.quizService.Update(uint(quizID), input)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrQuizNotFound || err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	storagePath, err := h.quizService.Delete(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	_ = h.storage.Remove(h.bucket, storagePath)

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz has been successfully deleted"})
}

type QuizExport struct {
	Title     string                   `json:"title"`
	Questions []services.QuestionInput `json:"questions"`
}

// ExportQuiz godoc
// @Summary      Export a quiz's questions as JSON
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} QuizExport
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, questions, err := h.quizService.ExportQuestions(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	filename := strings.ReplaceAll(quiz.Title, " ", "_")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.json\"", filename))
	c.JSON(http.StatusOK, QuizExport{Title: quiz.Title, Questions: questions})
}

// ImportQuiz godoc
// @Summary      Replace a quiz's questions from an uploaded JSON file
// @Tags         quizzes
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/import [post]
func (h *QuizHandler) ImportQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file required"})
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot read file"})
		return
	}

	var data QuizExport
	if err := json.Unmarshal(body, &data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	count, err := h.quizService.ImportQuestions(uint(quizID), data.Questions)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrQuizNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported_questions": count})
}
