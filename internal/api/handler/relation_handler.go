package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

type followRequest struct {
	FollowerID string `json:"followerId" binding:"required"`
	TargetID   string `json:"targetId" binding:"required"`
}

// Follow creates a follow edge.
// @Summary Follow a user
// @Tags relations
// @Accept json
// @Produce json
// @Param request body followRequest true "follow request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.relations.Follow(c.Request.Context(), req.FollowerID, req.TargetID); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow removes a follow edge; removing a missing edge succeeds.
// @Summary Unfollow a user
// @Tags relations
// @Accept json
// @Produce json
// @Param request body followRequest true "unfollow request"
// @Success 200 {object} response.Response
// @Router /api/relations/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.relations.Unfollow(c.Request.Context(), req.FollowerID, req.TargetID); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowers returns a user's followers in follow order.
// @Summary List followers
// @Tags relations
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=[]model.UserSummary}
// @Router /api/relations/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	list, err := h.relations.ListFollowers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}

// ListFollowing returns who a user follows, in follow order.
// @Summary List following
// @Tags relations
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=[]model.UserSummary}
// @Router /api/relations/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	list, err := h.relations.ListFollowing(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, list)
}
