package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

func leaderboardLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// GlobalLeaderboard godoc
// @Summary      Global user leaderboard
// @Description  Users ordered by total points, completed quizzes and perfect attempts
// @Tags         leaderboard
// @Produce      json
// @Param        limit query int false "Max rows to return (default 10, max 100)"
// @Success      200 {array} services.RankedUser
// @Router       /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GlobalLeaderboard(c *gin.Context) {
	users, err := h.leaderboardService.TopUsers(leaderboardLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

// UserRank godoc
// @Summary      A user's global leaderboard position
// @Tags         leaderboard
// @Produce      json
// @Param        userId path int true "User ID"
// @Success      200 {object} services.RankedUser
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/leaderboard/user/{userId} [get]
func (h *LeaderboardHandler) UserRank(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		return
	}

	ranked, err := h.leaderboardService.UserRank(uint(userID))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ranked)
}

// MyRank godoc
// @Summary      The current user's global leaderboard position
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.RankedUser
// @Router       /api/v1/leaderboard/me [get]
func (h *LeaderboardHandler) MyRank(c *gin.Context) {
	userID := c.GetUint("user_id")

	ranked, err := h.leaderboardService.UserRank(userID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ranked)
}

// WithMe godoc
// @Summary      Global leaderboard plus the current user's position
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max rows to return (default 10, max 100)"
// @Success      200 {object} services.LeaderboardWithUser
// @Router       /api/v1/leaderboard/with-me [get]
func (h *LeaderboardHandler) WithMe(c *gin.Context) {
	userID := c.GetUint("user_id")

	board, err := h.leaderboardService.WithUser(userID, leaderboardLimit(c))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrUserNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}
