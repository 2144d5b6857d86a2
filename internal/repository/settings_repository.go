package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const systemSettingColumns = `id, auto_backup, api_access, debug_mode, created_by, created_at, updated_at`

const groupColumns = `id, name, description, created_by, created_at, updated_at`

// SystemSettingUpdate lists the mutable setting toggles.
type SystemSettingUpdate struct {
	AutoBackup *bool
	APIAccess  *bool
	DebugMode  *bool
}

// SettingsRepository persists the system settings row and user groups.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*domain.SystemSetting, error)
	CreateSettings(ctx context.Context, s *domain.SystemSetting) error
	UpdateSettings(ctx context.Context, id string, update SystemSettingUpdate) (*domain.SystemSetting, error)

	CreateGroup(ctx context.Context, g *domain.Group) error
	GetGroup(ctx context.Context, id string) (*domain.Group, error)
	ListGroups(ctx context.Context, limit, offset int) ([]domain.Group, error)
	DeleteGroup(ctx context.Context, id string) error
}

type settingsRepository struct {
	db Querier
}

// NewSettingsRepository instantiates the repository.
func NewSettingsRepository(db Querier) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSettings returns the first settings row, pgx.ErrNoRows when none exists.
func (r *settingsRepository) GetSettings(ctx context.Context) (*domain.SystemSetting, error) {
	return scanSystemSettingRow(r.db.QueryRow(ctx,
		`SELECT `+systemSettingColumns+` FROM system_settings ORDER BY created_at ASC LIMIT 1`))
}

func (r *settingsRepository) CreateSettings(ctx context.Context, s *domain.SystemSetting) error {
	const query = `
        INSERT INTO system_settings (auto_backup, api_access, debug_mode, created_by)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		s.AutoBackup, s.APIAccess, s.DebugMode, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, id string, update SystemSettingUpdate) (*domain.SystemSetting, error) {
	builder := psql.Update("system_settings").Set("updated_at", squirrel.Expr("NOW()"))
	if update.AutoBackup != nil {
		builder = builder.Set("auto_backup", *update.AutoBackup)
	}
	if update.APIAccess != nil {
		builder = builder.Set("api_access", *update.APIAccess)
	}
	if update.DebugMode != nil {
		builder = builder.Set("debug_mode", *update.DebugMode)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + systemSettingColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSystemSettingRow(r.db.QueryRow(ctx, query, args...))
}

func (r *settingsRepository) CreateGroup(ctx context.Context, g *domain.Group) error {
	const query = `
        INSERT INTO groups (name, description, created_by)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, g.Name, g.Description, g.CreatedBy).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *settingsRepository) GetGroup(ctx context.Context, id string) (*domain.Group, error) {
	return scanGroupRow(r.db.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id=$1`, id))
}

func (r *settingsRepository) ListGroups(ctx context.Context, limit, offset int) ([]domain.Group, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+groupColumns+` FROM groups ORDER BY name ASC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		g, err := scanGroupRow(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

func (r *settingsRepository) DeleteGroup(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSystemSettingRow(row pgx.Row) (*domain.SystemSetting, error) {
	var s domain.SystemSetting
	if err := row.Scan(
		&s.ID, &s.AutoBackup, &s.APIAccess, &s.DebugMode, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanGroupRow(row pgx.Row) (*domain.Group, error) {
	var g domain.Group
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
