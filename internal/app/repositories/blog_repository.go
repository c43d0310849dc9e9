package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindsethq/mindset-backend/internal/app/models"
	"github.com/mindsethq/mindset-backend/internal/pkg/apperrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/dberrors"
	"github.com/mindsethq/mindset-backend/internal/pkg/logger"
)

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{
		db: db,
		sb: statementBuilder(),
	}
}

const blogPostColumns = "id, slug, title, summary, content, status, published_at, author_id, created_at, updated_at"

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	err := row.Scan(
		&post.ID, &post.Slug, &post.Title, &post.Summary, &post.Content,
		&post.Status, &post.PublishedAt, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create inserts a new blog post
func (r *BlogRepository) Create(ctx context.Context, post *models.BlogPost) (int64, error) {
	sql, args, err := r.sb.Insert("blog_posts").
		Columns("slug", "title", "summary", "content", "status", "published_at", "author_id").
		Values(post.Slug, post.Title, post.Summary, post.Content, post.Status, post.PublishedAt, post.AuthorID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create blog post query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_blog_post_slug") {
			return 0, apperrors.NewConflictError("slug already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewReferenceError("referenced author does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create blog post query")
		return 0, fmt.Errorf("error creating blog post: %w", err)
	}

	return post.ID, nil
}

// GetByID retrieves a blog post by ID
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves a blog post by its unique slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug})
}

func (r *BlogRepository) getOne(ctx context.Context, pred squirrel.Eq) (*models.BlogPost, error) {
	sql, args, err := r.sb.Select(blogPostColumns).
		From("blog_posts").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get blog post query: %w", err)
	}

	post, err := scanBlogPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error scanning blog post row")
		return nil, fmt.Errorf("error getting blog post: %w", err)
	}

	return post, nil
}

// List retrieves blog posts with optional title/content search.
// publishedOnly restricts the result to published posts for the public
// surface; the admin surface passes false and sees drafts too.
func (r *BlogRepository) List(ctx context.Context, params ListParams, publishedOnly bool) ([]*models.BlogPost, error) {
	allowed := map[string]string{
		"id":          "id",
		"title":       "title",
		"publishedAt": "published_at",
		"createdAt":   "created_at",
	}

	builder := r.sb.Select(blogPostColumns).
		From("blog_posts").
		OrderBy(params.orderBy(allowed, "created_at")).
		Limit(params.limit()).
		Offset(params.Offset)

	if publishedOnly {
		builder = builder.Where(squirrel.Eq{"status": models.PostStatusPublished})
	}
	if params.Query != "" {
		pattern := "%" + params.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list blog posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying blog posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// Update updates an existing blog post
func (r *BlogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	sql, args, err := r.sb.Update("blog_posts").
		SetMap(map[string]interface{}{
			"slug":         post.Slug,
			"title":        post.Title,
			"summary":      post.Summary,
			"content":      post.Content,
			"status":       post.Status,
			"published_at": post.PublishedAt,
			"updated_at":   squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update blog post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_blog_post_slug") {
			return apperrors.NewConflictError("slug already exists")
		}
		logger.Error().Err(err).Int64("postID", post.ID).Msg("Error executing update blog post query")
		return fmt.Errorf("error updating blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete deletes a blog post
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("blog_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete blog post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", id).Msg("Error executing delete blog post query")
		return fmt.Errorf("error deleting blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// SlugExists reports whether a post with the exact slug exists
func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("blog_posts").
		Where(squirrel.Eq{"slug": slug}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slug exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking slug existence: %w", err)
	}

	return exists, nil
}
