package domain

import "time"

// Blog is a published article. Slug is the unique lookup key.
type Blog struct {
	ID            string
	Title         string
	Slug          string
	Excerpt       *string
	Content       string
	FeaturedImage *string
	Category      string
	Tags          []string
	Published     bool
	Featured      bool
	PublishDate   *time.Time
	CreatedBy     *string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Doc is a documentation page. Slug is the unique lookup key.
type Doc struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Category  string
	Tags      []string
	Published bool
	Featured  bool
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FAQ is a question/answer pair, ordered by OrderIndex within a category.
type FAQ struct {
	ID         string
	Question   string
	Answer     string
	Category   string
	Published  bool
	OrderIndex int
	CreatedBy  *string
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
