package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// PlayQuiz godoc
// @Summary      Start a quiz
// @Description  Returns the quiz questions without correct answers and a server-issued started_at timestamp that must be echoed back on submission
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        quizId path int true "Quiz ID"
// @Success      200 {object} services.PlayQuiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/play/{quizId} [get]
func (h *AttemptHandler) PlayQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	play, err := h.attemptService.GetQuizForPlay(uint(quizID))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrQuizNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, play)
}

type SubmitQuizRequest struct {
	Answers   []services.SubmittedAnswer `json:"answers"`
	StartedAt string                     `json:"started_at" example:"2025-06-01T10:00:00Z"`
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  Grades the submission, records the attempt and returns the per-question results with updated cumulative stats
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        quizId path int true "Quiz ID"
// @Param        request body SubmitQuizRequest true "Answers and start timestamp"
// @Success      200 {object} services.SubmitResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/submit/{quizId} [post]
func (h *AttemptHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var startedAt time.Time
	if req.StartedAt != "" {
		startedAt, err = time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "started_at must be an RFC3339 timestamp"})
			return
		}
	}

	result, err := h.attemptService.SubmitQuiz(userID, uint(quizID), req.Answers, startedAt)
	if err != nil {
		c.JSON(submitErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func submitErrorStatus(err error) int {
	var (
		timeExceeded *services.TimeExceededError
		incomplete   *services.IncompleteError
		unknown      *services.UnknownQuestionError
		invalid      *services.InvalidAnswerError
	)
	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAnswersRequired),
		errors.Is(err, services.ErrStartedAtRequired),
		errors.As(err, &timeExceeded),
		errors.As(err, &incomplete),
		errors.As(err, &unknown),
		errors.As(err, &invalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MyHistory godoc
// @Summary      List the current user's recent attempts
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max attempts to return (default 10)"
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/attempts/my-history [get]
func (h *AttemptHandler) MyHistory(c *gin.Context) {
	userID := c.GetUint("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	attempts, err := h.attemptService.MyHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  attempts,
		"count": len(attempts),
	})
}

// QuizLeaderboard godoc
// @Summary      Leaderboard for one quiz
// @Description  Best attempts for the quiz, highest score first, earlier completion breaking ties
// @Tags         attempts
// @Produce      json
// @Param        quizId path int true "Quiz ID"
// @Param        limit query int false "Max rows to return (default 10)"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/quiz/{quizId}/leaderboard [get]
func (h *AttemptHandler) QuizLeaderboard(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	quiz, entries, err := h.attemptService.QuizLeaderboard(uint(quizID), limit)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrQuizNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz":        quiz,
		"leaderboard": entries,
	})
}

// CheckCompletion godoc
// @Summary      Check whether the current user has completed a quiz
// @Description  Purely informational; a completed quiz can still be resubmitted
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        quizId path int true "Quiz ID"
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/attempts/check/{quizId} [get]
func (h *AttemptHandler) CheckCompletion(c *gin.Context) {
	userID := c.GetUint("user_id")

	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	completed, attempt, err := h.attemptService.CheckCompletion(userID, uint(quizID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := gin.H{"has_completed": completed}
	if attempt != nil {
		resp["last_attempt"] = attempt
	}
	c.JSON(http.StatusOK, resp)
}
