package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/app/repositories"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
)

type fakeBlogStore struct {
	posts  map[int64]*models.BlogPost
	nextID int64
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{posts: make(map[int64]*models.BlogPost), nextID: 1}
}

func (s *fakeBlogStore) Create(_ context.Context, post *models.BlogPost) (int64, error) {
	for _, existing := range s.posts {
		if existing.Slug == post.Slug {
			return 0, apperrors.NewConflictError("slug already exists")
		}
	}
	id := s.nextID
	s.nextID++
	post.ID = id
	s.posts[id] = post
	return id, nil
}

func (s *fakeBlogStore) GetByID(_ context.Context, id int64) (*models.BlogPost, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}
	return post, nil
}

func (s *fakeBlogStore) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("post not found")
}

func (s *fakeBlogStore) List(_ context.Context, _ repositories.ListParams, publishedOnly bool) ([]*models.BlogPost, error) {
	var out []*models.BlogPost
	for _, post := range s.posts {
		if publishedOnly && post.Status != models.PostStatusPublished {
			continue
		}
		out = append(out, post)
	}
	return out, nil
}

func (s *fakeBlogStore) Update(_ context.Context, post *models.BlogPost) error {
	if _, ok := s.posts[post.ID]; !ok {
		return apperrors.NewResourceNotFoundError("post not found")
	}
	s.posts[post.ID] = post
	return nil
}

func (s *fakeBlogStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.posts[id]; !ok {
		return apperrors.NewResourceNotFoundError("post not found")
	}
	delete(s.posts, id)
	return nil
}

func (s *fakeBlogStore) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func newBlogServiceForTest(store *fakeBlogStore) BlogService {
	return NewBlogService(store, newFakeChecker(1))
}

func validPost() *models.BlogPost {
	return &models.BlogPost{
		Slug:     "welcome-post",
		Title:    "Welcome",
		Content:  "First post.",
		AuthorID: 1,
	}
}

func TestBlogService_CreatePost_DefaultsToDraft(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	post := validPost()
	id, err := svc.CreatePost(context.Background(), post)
	require.NoError(t, err)

	got, err := svc.GetPostByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusDraft, got.Status)
	require.Nil(t, got.PublishedAt)
}

func TestBlogService_CreatePost_PublishedStampsTime(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	post := validPost()
	post.Status = models.PostStatusPublished
	before := time.Now().UTC()
	id, err := svc.CreatePost(context.Background(), post)
	require.NoError(t, err)

	got, err := svc.GetPostByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got.PublishedAt)
	require.False(t, got.PublishedAt.Before(before))
}

func TestBlogService_CreatePost_ExplicitPublishedAtKept(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	at := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	post := validPost()
	post.Status = models.PostStatusPublished
	post.PublishedAt = &at
	id, err := svc.CreatePost(context.Background(), post)
	require.NoError(t, err)

	got, err := svc.GetPostByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, at, *got.PublishedAt)
}

func TestBlogService_CreatePost_Validation(t *testing.T) {
	svc := newBlogServiceForTest(newFakeBlogStore())

	tests := []struct {
		name   string
		mutate func(*models.BlogPost)
		field  string
	}{
		{"empty slug", func(p *models.BlogPost) { p.Slug = " " }, "slug"},
		{"empty title", func(p *models.BlogPost) { p.Title = "" }, "title"},
		{"empty content", func(p *models.BlogPost) { p.Content = "" }, "content"},
		{"bad status", func(p *models.BlogPost) { p.Status = "archived" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := validPost()
			tt.mutate(post)
			_, err := svc.CreatePost(context.Background(), post)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var ce *apperrors.CustomError
			require.ErrorAs(t, err, &ce)
			require.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestBlogService_CreatePost_UnknownAuthor(t *testing.T) {
	svc := newBlogServiceForTest(newFakeBlogStore())

	post := validPost()
	post.AuthorID = 99
	_, err := svc.CreatePost(context.Background(), post)
	require.ErrorIs(t, err, apperrors.ErrReferenceNotFound)
}

func TestBlogService_CreatePost_DuplicateSlug(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	_, err := svc.CreatePost(context.Background(), validPost())
	require.NoError(t, err)

	second := validPost()
	second.Title = "Welcome Again"
	_, err = svc.CreatePost(context.Background(), second)
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestBlogService_UpdatePost_UnpublishClearsTimestamp(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	post := validPost()
	post.Status = models.PostStatusPublished
	id, err := svc.CreatePost(context.Background(), post)
	require.NoError(t, err)

	draft := validPost()
	draft.ID = id
	draft.Status = models.PostStatusDraft
	require.NoError(t, svc.UpdatePost(context.Background(), draft))

	got, err := svc.GetPostByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, models.PostStatusDraft, got.Status)
	require.Nil(t, got.PublishedAt)
}

func TestBlogService_GetPostBySlug(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	_, err := svc.CreatePost(context.Background(), validPost())
	require.NoError(t, err)

	got, err := svc.GetPostBySlug(context.Background(), "welcome-post")
	require.NoError(t, err)
	require.Equal(t, "Welcome", got.Title)

	_, err = svc.GetPostBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestBlogService_GetPublishedPosts(t *testing.T) {
	store := newFakeBlogStore()
	svc := newBlogServiceForTest(store)

	draft := validPost()
	_, err := svc.CreatePost(context.Background(), draft)
	require.NoError(t, err)

	published := validPost()
	published.Slug = "second-post"
	published.Status = models.PostStatusPublished
	_, err = svc.CreatePost(context.Background(), published)
	require.NoError(t, err)

	got, err := svc.GetPublishedPosts(context.Background(), repositories.ListParams{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "second-post", got[0].Slug)

	all, err := svc.GetPosts(context.Background(), repositories.ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 2)
}
