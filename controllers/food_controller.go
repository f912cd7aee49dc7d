package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

func (h *FoodController) CreateFood(c *gin.Context) {
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	food, err := h.Svc.Create(input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "food created", "food": food})
}

func (h *FoodController) GetFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	food, err := h.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": food})
}

func (h *FoodController) ListFoods(c *gin.Context) {
	page, limit := pageParams(c)
	foods, totalPages, err := h.Svc.List(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"foods":       foods,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

func (h *FoodController) UpdateFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	food, err := h.Svc.Update(id, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food updated", "food": food})
}

func (h *FoodController) DeleteFood(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
