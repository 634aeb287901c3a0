package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

// ListNotifications returns a user's notifications, most recent first.
// @Summary List notifications
// @Tags notifications
// @Param user_id path string true "recipient id"
// @Success 200 {object} response.Response{data=[]model.Notification}
// @Router /api/notifications/{user_id} [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	list, err := h.notifications.List(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// MarkNotificationsRead marks every notification for the recipient as read.
// @Summary Mark all notifications read
// @Tags notifications
// @Param user_id path string true "recipient id"
// @Success 200 {object} response.Response
// @Router /api/notifications/{user_id}/read [put]
func (h *Handler) MarkNotificationsRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context(), c.Param("user_id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearNotifications deletes every notification for the recipient.
// @Summary Clear notifications
// @Tags notifications
// @Param user_id path string true "recipient id"
// @Success 200 {object} response.Response
// @Router /api/notifications/{user_id} [delete]
func (h *Handler) ClearNotifications(c *gin.Context) {
	if err := h.notifications.ClearAll(c.Request.Context(), c.Param("user_id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}
