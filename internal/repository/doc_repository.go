package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const docColumns = `id, title, slug, content, category, tags, published, featured,
       created_by, updated_by, created_at, updated_at`

// DocFilter narrows documentation listings.
type DocFilter struct {
	Category  *string
	Published *bool
	Limit     int
	Offset    int
}

// DocUpdate lists the mutable doc fields.
type DocUpdate struct {
	Title     *string
	Slug      *string
	Content   *string
	Category  *string
	Tags      []string
	Published *bool
	Featured  *bool
	UpdatedBy *string
}

// DocRepository persists documentation pages.
type DocRepository interface {
	Create(ctx context.Context, d *domain.Doc) error
	GetByID(ctx context.Context, id string) (*domain.Doc, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Doc, error)
	List(ctx context.Context, filter DocFilter) ([]domain.Doc, error)
	Categories(ctx context.Context) ([]string, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, id string, update DocUpdate) (*domain.Doc, error)
	Delete(ctx context.Context, id string) error
}

type docRepository struct {
	db Querier
}

// NewDocRepository instantiates the repository.
func NewDocRepository(db Querier) DocRepository {
	return &docRepository{db: db}
}

func (r *docRepository) Create(ctx context.Context, d *domain.Doc) error {
	const query = `
        INSERT INTO docs (title, slug, content, category, tags, published, featured, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		d.Title, d.Slug, d.Content, d.Category, d.Tags, d.Published, d.Featured, d.CreatedBy,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *docRepository) GetByID(ctx context.Context, id string) (*domain.Doc, error) {
	return scanDocRow(r.db.QueryRow(ctx,
		`SELECT `+docColumns+` FROM docs WHERE id=$1`, id))
}

func (r *docRepository) GetBySlug(ctx context.Context, slug string) (*domain.Doc, error) {
	return scanDocRow(r.db.QueryRow(ctx,
		`SELECT `+docColumns+` FROM docs WHERE slug=$1`, slug))
}

func (r *docRepository) List(ctx context.Context, filter DocFilter) ([]domain.Doc, error) {
	builder := psql.Select(docColumns).From("docs")
	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Published != nil {
		builder = builder.Where(squirrel.Eq{"published": *filter.Published})
	}
	query, args, err := builder.
		OrderBy("created_at DESC").
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

	docs := []domain.Doc{}
	for rows.Next() {
		d, err := scanDocRow(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *d)
	}
	return docs, rows.Err()
}

func (r *docRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM docs WHERE published = TRUE AND category <> '' ORDER BY category`)
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

func (r *docRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM docs WHERE slug=$1 AND id <> $2)`, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *docRepository) Update(ctx context.Context, id string, update DocUpdate) (*domain.Doc, error) {
	builder := psql.Update("docs").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Slug != nil {
		builder = builder.Set("slug", *update.Slug)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
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
	if update.UpdatedBy != nil {
		builder = builder.Set("updated_by", *update.UpdatedBy)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + docColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanDocRow(r.db.QueryRow(ctx, query, args...))
}

func (r *docRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM docs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanDocRow(row pgx.Row) (*domain.Doc, error) {
	var d domain.Doc
	if err := row.Scan(
		&d.ID, &d.Title, &d.Slug, &d.Content, &d.Category, &d.Tags, &d.Published, &d.Featured,
		&d.CreatedBy, &d.UpdatedBy, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
