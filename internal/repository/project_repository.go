package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const projectColumns = `id, name, description, status, start_date, end_date, budget, progress,
       created_by, created_at, updated_at`

// ProjectUpdate lists the mutable project fields. Nil fields are untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Progress    *int
}

// ProjectRepository persists project records.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, limit, offset int) ([]domain.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	db Querier
}

// NewProjectRepository instantiates the repository.
func NewProjectRepository(db Querier) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (name, description, status, start_date, end_date, budget, progress, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.Budget,
		project.Progress,
		project.CreatedBy,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return scanProjectRow(r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id=$1`, id))
}

func (r *projectRepository) List(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		project, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *project)
	}
	return result, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, id string, update ProjectUpdate) (*domain.Project, error) {
	builder := psql.Update("projects").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		builder = builder.Set("end_date", *update.EndDate)
	}
	if update.Budget != nil {
		builder = builder.Set("budget", *update.Budget)
	}
	if update.Progress != nil {
		builder = builder.Set("progress", *update.Progress)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanProjectRow(r.db.QueryRow(ctx, query, args...))
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProjectRow(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.EndDate, &p.Budget,
		&p.Progress, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
