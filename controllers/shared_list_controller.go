package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SharedListController struct {
	Svc *services.SharedListService
}

func NewSharedListController(svc *services.SharedListService) *SharedListController {
	return &SharedListController{Svc: svc}
}

type ShareInput struct {
	ShoppingListID uint `json:"shoppingListId" binding:"required"`
	GroupID        uint `json:"groupId" binding:"required"`
}

func (h *SharedListController) Share(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input ShareInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	shared, err := h.Svc.Share(userID, input.ShoppingListID, input.GroupID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "sharedLists": []any{shared}})
}

func (h *SharedListController) ListForGroup(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	groupID, ok := idParam(c, "id")
	if !ok {
		return
	}

	items, err := h.Svc.ListForGroup(userID, groupID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "sharedLists": items})
}

type MarkAsBoughtInput struct {
	SharedShoppingListID uint `json:"sharedShoppingListId" binding:"required"`
}

func (h *SharedListController) MarkAsBought(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input MarkAsBoughtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Svc.MarkAsBought(userID, input.SharedShoppingListID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "marked as bought"})
}
