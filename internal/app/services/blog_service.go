package services

import (
	"context"
	"strings"
	"time"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

// BlogStore is the repository surface the blog service depends on
type BlogStore interface {
	Create(ctx context.Context, post *models.BlogPost) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, params repositories.ListParams, publishedOnly bool) ([]*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// BlogService defines the interface for blog post operations
type BlogService interface {
	CreatePost(ctx context.Context, post *models.BlogPost) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetPosts(ctx context.Context, params repositories.ListParams) ([]*models.BlogPost, error)
	GetPublishedPosts(ctx context.Context, params repositories.ListParams) ([]*models.BlogPost, error)
	UpdatePost(ctx context.Context, post *models.BlogPost) error
	DeletePost(ctx context.Context, id int64) error
}

type blogServiceImpl struct {
	blogStore BlogStore
	authors   ReferenceChecker
}

// NewBlogService creates a new blog service instance
func NewBlogService(blogStore BlogStore, authors ReferenceChecker) BlogService {
	return &blogServiceImpl{
		blogStore: blogStore,
		authors:   authors,
	}
}

func validatePost(post *models.BlogPost) error {
	if post == nil {
		return apperrors.NewValidationError("post is nil")
	}
	if strings.TrimSpace(post.Slug) == "" {
		return apperrors.NewFieldValidationError("slug cannot be empty", "slug")
	}
	if strings.TrimSpace(post.Title) == "" {
		return apperrors.NewFieldValidationError("title cannot be empty", "title")
	}
	if strings.TrimSpace(post.Content) == "" {
		return apperrors.NewFieldValidationError("content cannot be empty", "content")
	}
	if post.Status != "" && !post.Status.Valid() {
		return apperrors.NewFieldValidationError("status must be draft or published", "status")
	}
	return nil
}

// normalizePost fills derived fields. A post published without an
// explicit timestamp gets stamped now; drafts carry no timestamp.
func normalizePost(post *models.BlogPost) {
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	if post.Status == models.PostStatusDraft {
		post.PublishedAt = nil
	}
}

// CreatePost creates a new blog post
func (s *blogServiceImpl) CreatePost(ctx context.Context, post *models.BlogPost) (int64, error) {
	if err := validatePost(post); err != nil {
		return 0, err
	}

	exists, err := s.authors.Exists(ctx, post.AuthorID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperrors.NewReferenceError("author does not exist")
	}

	// Advisory; the unique constraint settles concurrent writes.
	taken, err := s.blogStore.SlugExists(ctx, post.Slug)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, apperrors.NewConflictError("slug already exists")
	}

	normalizePost(post)
	return s.blogStore.Create(ctx, post)
}

// GetPostByID retrieves a blog post by ID
func (s *blogServiceImpl) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid post ID")
	}
	return s.blogStore.GetByID(ctx, id)
}

// GetPostBySlug retrieves a blog post by its unique slug
func (s *blogServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, apperrors.NewValidationError("slug cannot be empty")
	}
	return s.blogStore.GetBySlug(ctx, slug)
}

// GetPosts retrieves all posts including drafts
func (s *blogServiceImpl) GetPosts(ctx context.Context, params repositories.ListParams) ([]*models.BlogPost, error) {
	return s.blogStore.List(ctx, params, false)
}

// GetPublishedPosts retrieves published posts only
func (s *blogServiceImpl) GetPublishedPosts(ctx context.Context, params repositories.ListParams) ([]*models.BlogPost, error) {
	return s.blogStore.List(ctx, params, true)
}

// UpdatePost updates an existing blog post
func (s *blogServiceImpl) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	if err := validatePost(post); err != nil {
		return err
	}
	if post.ID <= 0 {
		return apperrors.NewValidationError("invalid post ID")
	}

	normalizePost(post)
	return s.blogStore.Update(ctx, post)
}

// DeletePost deletes a blog post
func (s *blogServiceImpl) DeletePost(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid post ID")
	}
	return s.blogStore.Delete(ctx, id)
}
