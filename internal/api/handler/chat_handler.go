package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/internal/middleware"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

type sendMessageRequest struct {
	To   string `json:"to" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// SendMessage persists a chat message and broadcasts it to the conversation
// topic. The returned timestamp is server-assigned.
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Param request body sendMessageRequest true "message"
// @Success 200 {object} response.Response{data=model.ChatMessage}
// @Router /api/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	msg, err := h.chat.Send(c.Request.Context(), middleware.UserID(c), req.To, req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, msg)
}

// ChatHistory returns the full conversation between two users, ascending by
// timestamp. The order of the two path params does not matter.
// @Summary Chat history
// @Tags chat
// @Param from path string true "one participant"
// @Param to path string true "other participant"
// @Success 200 {object} response.Response{data=[]model.ChatMessage}
// @Router /api/messages/{from}/{to} [get]
func (h *Handler) ChatHistory(c *gin.Context) {
	msgs, err := h.chat.History(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, msgs)
}

// ChatStream streams live messages for a conversation as server-sent events
// until the client disconnects. Missed messages are recovered via history.
// @Summary Live chat stream
// @Tags chat
// @Param with path string true "other participant"
// @Produce text/event-stream
// @Router /api/messages/stream/{with} [get]
func (h *Handler) ChatStream(c *gin.Context) {
	userID := middleware.UserID(c)
	ch, err := h.chat.Subscribe(c.Request.Context(), userID, c.Param("with"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Stream(func(w io.Writer) bool {
		msg, ok := <-ch
		if !ok {
			return false
		}
		c.SSEvent("message", msg)
		return true
	})
}
