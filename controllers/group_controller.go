package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	Svc *services.GroupService
}

func NewGroupController(svc *services.GroupService) *GroupController {
	return &GroupController{Svc: svc}
}

type CreateGroupInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *GroupController) CreateGroup(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input CreateGroupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	group, err := h.Svc.Create(userID, input.Name, input.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (h *GroupController) ListGroups(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	groups, err := h.Svc.ListForUser(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}
