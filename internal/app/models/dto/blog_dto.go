package dto

import "time"

// PostRequest carries create/update data for a blog post
type PostRequest struct {
	Slug        string     `json:"slug" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Summary     *string    `json:"summary"`
	Content     string     `json:"content" binding:"required"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft published"`
	PublishedAt *time.Time `json:"publishedAt"`
	AuthorID    int64      `json:"authorId" binding:"required"`
}
