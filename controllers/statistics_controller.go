package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatsSvc     *services.StatisticsService
	NutritionSvc *services.NutritionService
}

func NewStatisticsController(ss *services.StatisticsService, ns *services.NutritionService) *StatisticsController {
	return &StatisticsController{StatsSvc: ss, NutritionSvc: ns}
}

// GET /shopping-list/statistics
func (h *StatisticsController) GetFoodStatistics(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	stats, err := h.StatsSvc.FoodStatistics(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "statistics": stats})
}

// GET /users/nutrition-stats?fromDate=…&toDate=… (defaults to the
// current month, like the client's summary screen)
func (h *StatisticsController) GetNutritionStats(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	from, to := first, last
	if v := c.Query("fromDate"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid fromDate"})
			return
		}
		from = parsed
	}
	if v := c.Query("toDate"); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid toDate"})
			return
		}
		to = parsed
	}

	stats, err := h.NutritionSvc.Stats(userID, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
