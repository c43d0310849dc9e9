package models

// PostStatus defines the publication state of a blog post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Valid reports whether s is a known publication state.
func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}
