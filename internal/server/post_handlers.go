package server

import (
	"devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description All posts, newest first
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Post by id
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.Get(c.UserContext(), postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.PostInput true "Post"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	var req service.PostInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.Create(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Edit post text
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param request body service.PostInput true "Post"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}
	var req service.PostInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	post, err := s.postService.UpdateText(c.UserContext(), userID, postID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {object} object{msg=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}

	if err := s.postService.Delete(c.UserContext(), userID, postID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/:id/like
// @Summary Like post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {array} models.Like
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/{id}/like [put]
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}

	likes, err := s.postService.Like(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/:id/unlike
// @Summary Unlike post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {array} models.Like
// @Failure 400 {object} models.ErrorResponse
// @Router /posts/{id}/unlike [put]
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}

	likes, err := s.postService.Unlike(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(likes)
}

// AddComment handles POST /api/posts/:id/comment
// @Summary Comment on post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param request body service.CommentInput true "Comment"
// @Success 200 {array} models.Comment
// @Router /posts/{id}/comment [post]
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}
	var req service.CommentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	comments, err := s.postService.AddComment(c.UserContext(), userID, postID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// UpdateComment handles PUT /api/posts/:id/comment/:comment_id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}
	var req service.CommentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	comments, err := s.postService.UpdateComment(c.UserContext(), userID, postID, c.Params("comment_id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// RemoveComment handles DELETE /api/posts/:id/comment/:comment_id
func (s *Server) RemoveComment(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return respondError(c, err)
	}
	postID, err := parseID(c, "id", "Post")
	if err != nil {
		return respondError(c, err)
	}

	comments, err := s.postService.RemoveComment(c.UserContext(), userID, postID, c.Params("comment_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}
