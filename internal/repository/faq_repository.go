package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const faqColumns = `id, question, answer, category, published, order_index,
       created_by, updated_by, created_at, updated_at`

// FAQFilter narrows FAQ listings.
type FAQFilter struct {
	Category  *string
	Published *bool
	Limit     int
	Offset    int
}

// FAQUpdate lists the mutable FAQ fields.
type FAQUpdate struct {
	Question   *string
	Answer     *string
	Category   *string
	Published  *bool
	OrderIndex *int
	UpdatedBy  *string
}

// FAQRepository persists FAQ entries.
type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) error
	GetByID(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context, filter FAQFilter) ([]domain.FAQ, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, update FAQUpdate) (*domain.FAQ, error)
	Delete(ctx context.Context, id string) error
}

type faqRepository struct {
	db Querier
}

// NewFAQRepository instantiates the repository.
func NewFAQRepository(db Querier) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, f *domain.FAQ) error {
	const query = `
        INSERT INTO faqs (question, answer, category, published, order_index, created_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		f.Question, f.Answer, f.Category, f.Published, f.OrderIndex, f.CreatedBy,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *faqRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	return scanFAQRow(r.db.QueryRow(ctx,
		`SELECT `+faqColumns+` FROM faqs WHERE id=$1`, id))
}

func (r *faqRepository) List(ctx context.Context, filter FAQFilter) ([]domain.FAQ, error) {
	builder := psql.Select(faqColumns).From("faqs")
	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Published != nil {
		builder = builder.Where(squirrel.Eq{"published": *filter.Published})
	}
	query, args, err := builder.
		OrderBy("order_index ASC", "created_at ASC").
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

	faqs := []domain.FAQ{}
	for rows.Next() {
		f, err := scanFAQRow(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, *f)
	}
	return faqs, rows.Err()
}

func (r *faqRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM faqs WHERE category <> '' ORDER BY category`)
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

func (r *faqRepository) Update(ctx context.Context, id string, update FAQUpdate) (*domain.FAQ, error) {
	builder := psql.Update("faqs").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Question != nil {
		builder = builder.Set("question", *update.Question)
	}
	if update.Answer != nil {
		builder = builder.Set("answer", *update.Answer)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Published != nil {
		builder = builder.Set("published", *update.Published)
	}
	if update.OrderIndex != nil {
		builder = builder.Set("order_index", *update.OrderIndex)
	}
	if update.UpdatedBy != nil {
		builder = builder.Set("updated_by", *update.UpdatedBy)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + faqColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanFAQRow(r.db.QueryRow(ctx, query, args...))
}

func (r *faqRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanFAQRow(row pgx.Row) (*domain.FAQ, error) {
	var f domain.FAQ
	if err := row.Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.Published, &f.OrderIndex,
		&f.CreatedBy, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}
