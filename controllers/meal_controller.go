package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

type CreateMealInput struct {
	Name     string                     `json:"name" binding:"required"`
	MealType string                     `json:"meal_type" binding:"required"`
	Date     time.Time                  `json:"date" binding:"required"`
	Foods    []services.MealFoodRequest `json:"foods"`
}

func (h *MealController) CreateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input CreateMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meal, err := h.Svc.Create(userID, input.Name, input.MealType, input.Date, input.Foods)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	meal, err := h.Svc.Get(userID, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	page, limit := pageParams(c)
	filter := services.MealFilter{
		Page:     page,
		Limit:    limit,
		MealType: c.Query("meal_type"),
	}
	if v := c.Query("from_date"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid from_date"})
			return
		}
		filter.From = &from
	}
	if v := c.Query("to_date"); v != "" {
		to, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid to_date"})
			return
		}
		filter.To = &to
	}

	meals, totalPages, err := h.Svc.List(userID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals, "total_pages": totalPages})
}

type UpdateMealInfoInput struct {
	Name     string    `json:"name" binding:"required"`
	MealType string    `json:"meal_type" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
}

func (h *MealController) UpdateMealInfo(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input UpdateMealInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meal, err := h.Svc.UpdateInfo(userID, id, input.Name, input.MealType, input.Date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

type UpdateMealFoodsInput struct {
	Foods []services.MealFoodRequest `json:"foods"`
}

func (h *MealController) UpdateMealFoods(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input UpdateMealFoodsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meal, err := h.Svc.ReplaceFoods(userID, id, input.Foods)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
