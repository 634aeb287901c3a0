package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/internal/middleware"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

type updateProfileRequest struct {
	Description string `json:"description"`
	ImagePath   string `json:"imagePath"`
}

// GetProfile returns a public profile by username.
// @Summary Get profile
// @Tags profile
// @Param username path string true "username"
// @Success 200 {object} response.Response{data=model.User}
// @Router /api/profile/{username} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.accounts.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile edits the caller's own profile fields.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Param user_id path string true "user id"
// @Param request body updateProfileRequest true "fields"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 403 {object} response.Response
// @Router /api/profile/{user_id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.accounts.UpdateProfile(c.Request.Context(), c.Param("user_id"), middleware.UserID(c), req.Description, req.ImagePath)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, user)
}
