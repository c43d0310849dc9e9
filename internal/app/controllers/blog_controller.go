package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/models/dto"
	"github.com/mindsethq/mindset-backend/internal/app/services"
	"github.com/mindsethq/mindset-backend/internal/middleware"
)

// BlogController handles blog post operations
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

func postFromRequest(req *dto.PostRequest) *models.BlogPost {
	return &models.BlogPost{
		Slug:        req.Slug,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Status:      models.PostStatus(req.Status),
		PublishedAt: req.PublishedAt,
		AuthorID:    req.AuthorID,
	}
}

// Create handles blog post creation
// @Summary Create a blog post
// @Description Creates a blog post with a unique slug, authored by an admin
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostRequest true "Post information"
// @Success 201 {object} dto.APIResponse "Post created"
// @Failure 409 {object} dto.ErrorResponse "Slug already exists"
// @Router /blog/posts [post]
func (c *BlogController) Create(ctx *gin.Context) {
	var req dto.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid post data", err)
		return
	}

	post := postFromRequest(&req)
	if _, err := c.blogService.CreatePost(ctx, post); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusCreated, post)
}

// GetBySlug retrieves a published or draft post by slug
// @Summary Get a blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.APIResponse "Post retrieved"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog/posts/{slug} [get]
func (c *BlogController) GetBySlug(ctx *gin.Context) {
	post, err := c.blogService.GetPostBySlug(ctx, ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, post)
}

// ListPublished retrieves published posts for the public surface
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Param q query string false "Title or content search"
// @Success 200 {object} dto.APIResponse "Posts retrieved"
// @Router /blog/posts [get]
func (c *BlogController) ListPublished(ctx *gin.Context) {
	posts, err := c.blogService.GetPublishedPosts(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, posts)
}

// ListAll retrieves all posts including drafts for the admin surface
// @Summary List all blog posts
// @Tags blog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Posts retrieved"
// @Router /admin/blog/posts [get]
func (c *BlogController) ListAll(ctx *gin.Context) {
	posts, err := c.blogService.GetPosts(ctx, listParamsFromQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, posts)
}

// Update updates an existing post
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body dto.PostRequest true "Post information"
// @Success 200 {object} dto.APIResponse "Post updated"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog/posts/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid post data", err)
		return
	}

	post := postFromRequest(&req)
	post.ID = id
	if err := c.blogService.UpdatePost(ctx, post); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respondData(ctx, http.StatusOK, post)
}

// Delete deletes a blog post
// @Summary Delete a blog post
// @Tags blog
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 204 "Post deleted"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog/posts/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
