package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const blogColumns = `id, title, slug, excerpt, content, featured_image, category, tags,
       published, featured, publish_date, created_by, updated_by, created_at, updated_at`

// BlogFilter narrows blog listings.
type BlogFilter struct {
	Category  *string
	Published *bool
	Limit     int
	Offset    int
}

// BlogUpdate lists the mutable blog fields.
type BlogUpdate struct {
	Title         *string
	Slug          *string
	Excerpt       *string
	Content       *string
	FeaturedImage *string
	Category      *string
	Tags          []string
	Published     *bool
	Featured      *bool
	PublishDate   *time.Time
	UpdatedBy     *string
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	Create(ctx context.Context, b *domain.Blog) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]domain.Blog, error)
	Categories(ctx context.Context) ([]string, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, id string, update BlogUpdate) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogRepository struct {
	db Querier
}

// NewBlogRepository instantiates the repository.
func NewBlogRepository(db Querier) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, b *domain.Blog) error {
	const query = `
        INSERT INTO blogs (title, slug, excerpt, content, featured_image, category, tags, published, featured, publish_date, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		b.Title, b.Slug, b.Excerpt, b.Content, b.FeaturedImage, b.Category, b.Tags,
		b.Published, b.Featured, b.PublishDate, b.CreatedBy,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	return scanBlogRow(r.db.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id=$1`, id))
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	return scanBlogRow(r.db.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE slug=$1`, slug))
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]domain.Blog, error) {
	builder := psql.Select(blogColumns).From("blogs")
	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Published != nil {
		builder = builder.Where(squirrel.Eq{"published": *filter.Published})
	}
	query, args, err := builder.
		OrderBy("publish_date DESC NULLS LAST", "created_at DESC").
		Limit(uint64(normalizeLimit(filter.Limit))).
		Offset(uint64(normalizeOffset(filter.Offset))).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		b, err := scanBlogRow(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

func (r *blogRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM blogs WHERE published = TRUE AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *blogRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug=$1 AND id <> $2)`, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *blogRepository) Update(ctx context.Context, id string, update BlogUpdate) (*domain.Blog, error) {
	builder := psql.Update("blogs").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Slug != nil {
		builder = builder.Set("slug", *update.Slug)
	}
	if update.Excerpt != nil {
		builder = builder.Set("excerpt", *update.Excerpt)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.FeaturedImage != nil {
		builder = builder.Set("featured_image", *update.FeaturedImage)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Tags != nil {
		builder = builder.Set("tags", update.Tags)
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
	}
	if update.Featured != nil {
		builder = builder.Set("featured", *update.Featured)
	}
	if update.PublishDate != nil {
		builder = builder.Set("publish_date", *update.PublishDate)
	}
	if update.UpdatedBy != nil {
		builder = builder.Set("updated_by", *update.UpdatedBy)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + blogColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanBlogRow(r.db.QueryRow(ctx, query, args...))
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanBlogRow(row pgx.Row) (*domain.Blog, error) {
	var b domain.Blog
	if err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.FeaturedImage, &b.Category, &b.Tags,
		&b.Published, &b.Featured, &b.PublishDate, &b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
