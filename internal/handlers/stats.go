package handlers

import (
	"net/http"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// PublicStats godoc
// @Summary      Landing page totals
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.PublicStats
// @Router       /api/v1/stats/public [get]
func (h *StatsHandler) PublicStats(c *gin.Context) {
	stats, err := h.statsService.Public()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
