package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ShoppingListController struct {
	Svc *services.ShoppingListService
}

func NewShoppingListController(svc *services.ShoppingListService) *ShoppingListController {
	return &ShoppingListController{Svc: svc}
}

// CreateItems takes the client's array body and creates all entries
// in one shot.
func (h *ShoppingListController) CreateItems(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input []services.ShoppingListItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	items, err := h.Svc.CreateBatch(userID, input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "items created", "shoppingLists": items})
}

func (h *ShoppingListController) ListItems(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	page, limit := pageParams(c)
	items, total, totalPages, err := h.Svc.List(userID, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"shoppingLists": items,
		"totalItems":    total,
		"totalPages":    totalPages,
		"currentPage":   page,
	})
}

// GET /shopping-list/by-date?fromDate=…&toDate=…
func (h *ShoppingListController) ListItemsByDate(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	page, limit := pageParams(c)
	from, err := parseDate(c.Query("fromDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid fromDate"})
		return
	}
	to, err := parseDate(c.Query("toDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid toDate"})
		return
	}

	items, total, totalPages, err := h.Svc.ListByDateRange(userID, page, limit, from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"shoppingLists": items,
		"totalItems":    total,
		"totalPages":    totalPages,
		"currentPage":   page,
	})
}

func (h *ShoppingListController) UpdateItem(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var patch services.ShoppingListPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, err := h.Svc.Update(userID, id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated", "shoppingList": item})
}

func (h *ShoppingListController) DeleteItem(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}
