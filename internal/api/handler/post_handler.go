package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gaurav-Shaw09/PenFolio/internal/middleware"
	"github.com/Gaurav-Shaw09/PenFolio/pkg/response"
)

type createPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content"`
	ImagePath string `json:"imagePath"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost creates a blog post owned by the caller.
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body createPostRequest true "post fields"
// @Success 200 {object} response.Response{data=model.PostView}
// @Router /api/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.engagement.CreatePost(c.Request.Context(), middleware.UserID(c), req.Title, req.Content, req.ImagePath)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost returns one post with comments and like state.
// @Summary Get a post
// @Tags posts
// @Param id path string true "post id"
// @Success 200 {object} response.Response{data=model.PostView}
// @Router /api/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.engagement.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// ListPosts returns all posts, newest first.
// @Summary List posts
// @Tags posts
// @Success 200 {object} response.Response{data=[]model.PostView}
// @Router /api/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.engagement.ListPosts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, posts)
}

// ListPostsByAuthor returns one author's posts, newest first.
// @Summary List posts by author
// @Tags posts
// @Param user_id path string true "author id"
// @Success 200 {object} response.Response{data=[]model.PostView}
// @Router /api/posts/user/{user_id} [get]
func (h *Handler) ListPostsByAuthor(c *gin.Context) {
	posts, err := h.engagement.ListPostsByAuthor(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, posts)
}

// FollowingFeed returns posts from everyone the caller follows.
// @Summary Following feed
// @Tags posts
// @Success 200 {object} response.Response{data=[]model.PostView}
// @Router /api/posts/following [get]
func (h *Handler) FollowingFeed(c *gin.Context) {
	posts, err := h.engagement.FollowingFeed(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, posts)
}

// UpdatePost edits a post. Only the owner may update.
// @Summary Update a post
// @Tags posts
// @Accept json
// @Param id path string true "post id"
// @Param request body updatePostRequest true "fields"
// @Success 200 {object} response.Response{data=model.PostView}
// @Failure 403 {object} response.Response
// @Router /api/posts/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.engagement.UpdatePost(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Title, req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost deletes a post and its comments. Only the owner may delete.
// @Summary Delete a post
// @Tags posts
// @Param id path string true "post id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.engagement.DeletePost(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleLike likes or unlikes a post and returns the new like count.
// @Summary Toggle post like
// @Tags posts
// @Param id path string true "post id"
// @Success 200 {object} response.Response
// @Router /api/posts/{id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	count, err := h.engagement.ToggleLike(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"likes": count})
}

// AddComment appends a comment to a post.
// @Summary Add a comment
// @Tags posts
// @Accept json
// @Param id path string true "post id"
// @Param request body commentRequest true "comment"
// @Success 200 {object} response.Response{data=model.Comment}
// @Router /api/posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.engagement.AddComment(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment removes a comment; allowed for its author or the post owner.
// @Summary Delete a comment
// @Tags posts
// @Param id path string true "post id"
// @Param comment_id path string true "comment id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/posts/{id}/comments/{comment_id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	err := h.engagement.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("comment_id"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleCommentLike likes or unlikes a comment and returns the new count.
// @Summary Toggle comment like
// @Tags posts
// @Param id path string true "post id"
// @Param comment_id path string true "comment id"
// @Success 200 {object} response.Response
// @Router /api/posts/{id}/comments/{comment_id}/like [post]
func (h *Handler) ToggleCommentLike(c *gin.Context) {
	count, err := h.engagement.ToggleCommentLike(c.Request.Context(), c.Param("comment_id"), middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"likes": count})
}
