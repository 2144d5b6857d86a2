package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateBlogRequest payload.
type CreateBlogRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Published     bool       `json:"published"`
	Featured      bool       `json:"featured"`
	PublishDate   *time.Time `json:"publish_date"`
}

// UpdateBlogRequest payload. Absent fields stay untouched.
type UpdateBlogRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	Category      *string    `json:"category"`
	Tags          []string   `json:"tags"`
	Published     *bool      `json:"published"`
	Featured      *bool      `json:"featured"`
	PublishDate   *time.Time `json:"publish_date"`
}

// BlogResponse article record.
type BlogResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Published     bool       `json:"published"`
	Featured      bool       `json:"featured"`
	PublishDate   *time.Time `json:"publish_date"`
	CreatedBy     *string    `json:"created_by"`
	UpdatedBy     *string    `json:"updated_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewBlogResponse maps a blog post.
func NewBlogResponse(b *domain.Blog) BlogResponse {
	return BlogResponse{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		Excerpt:       b.Excerpt,
		Content:       b.Content,
		FeaturedImage: b.FeaturedImage,
		Category:      b.Category,
		Tags:          b.Tags,
		Published:     b.Published,
		Featured:      b.Featured,
		PublishDate:   b.PublishDate,
		CreatedBy:     b.CreatedBy,
		UpdatedBy:     b.UpdatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// CreateDocRequest payload.
type CreateDocRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
	Featured  bool     `json:"featured"`
}

// UpdateDocRequest payload. Absent fields stay untouched.
type UpdateDocRequest struct {
	Title     *string  `json:"title"`
	Slug      *string  `json:"slug"`
	Content   *string  `json:"content"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
	Featured  *bool    `json:"featured"`
}

// DocResponse documentation page.
type DocResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Featured  bool      `json:"featured"`
	CreatedBy *string   `json:"created_by"`
	UpdatedBy *string   `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocResponse maps a doc page.
func NewDocResponse(d *domain.Doc) DocResponse {
	return DocResponse{
		ID:        d.ID,
		Title:     d.Title,
		Slug:      d.Slug,
		Content:   d.Content,
		Category:  d.Category,
		Tags:      d.Tags,
		Published: d.Published,
		Featured:  d.Featured,
		CreatedBy: d.CreatedBy,
		UpdatedBy: d.UpdatedBy,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CreateFAQRequest payload.
type CreateFAQRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Published  bool   `json:"published"`
	OrderIndex int    `json:"order_index"`
}

// UpdateFAQRequest payload. Absent fields stay untouched.
type UpdateFAQRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *string `json:"category"`
	Published  *bool   `json:"published"`
	OrderIndex *int    `json:"order_index"`
}

// FAQResponse question/answer pair.
type FAQResponse struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	Published  bool      `json:"published"`
	OrderIndex int       `json:"order_index"`
	CreatedBy  *string   `json:"created_by"`
	UpdatedBy  *string   `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewFAQResponse maps a FAQ entry.
func NewFAQResponse(f *domain.FAQ) FAQResponse {
	return FAQResponse{
		ID:         f.ID,
		Question:   f.Question,
		Answer:     f.Answer,
		Category:   f.Category,
		Published:  f.Published,
		OrderIndex: f.OrderIndex,
		CreatedBy:  f.CreatedBy,
		UpdatedBy:  f.UpdatedBy,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
