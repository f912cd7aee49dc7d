package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InvitationController struct {
	Svc *services.InvitationService
}

func NewInvitationController(svc *services.InvitationService) *InvitationController {
	return &InvitationController{Svc: svc}
}

type InviteInput struct {
	Username string `json:"username" binding:"required"`
	GroupID  uint   `json:"groupId" binding:"required"`
}

func (h *InvitationController) Invite(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input InviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	inv, err := h.Svc.Invite(userID, input.GroupID, input.Username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

func (h *InvitationController) ListPending(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	invs, err := h.Svc.ListPending(userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invs)
}

type AcceptInvitationInput struct {
	InvitationID uint `json:"invitationId" binding:"required"`
}

func (h *InvitationController) Accept(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var input AcceptInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.Svc.Accept(userID, input.InvitationID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "invitation accepted"})
}
