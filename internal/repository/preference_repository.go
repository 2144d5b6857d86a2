package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const preferenceColumns = `id, user_id, email_notifications, push_notifications, project_updates,
       task_assignments, system_maintenance, dark_mode, compact_view, language, timezone,
       created_at, updated_at`

// PreferenceUpdate lists the mutable notification/display toggles.
type PreferenceUpdate struct {
	EmailNotifications *bool
	PushNotifications  *bool
	ProjectUpdates     *bool
	TaskAssignments    *bool
	SystemMaintenance  *bool
	DarkMode           *bool
	CompactView        *bool
	Language           *string
	Timezone           *string
}

// PreferenceRepository persists per-user preference rows.
type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.UserPreference, error)
	Create(ctx context.Context, pref *domain.UserPreference) error
	Update(ctx context.Context, userID string, update PreferenceUpdate) (*domain.UserPreference, error)
}

type preferenceRepository struct {
	db Querier
}

// NewPreferenceRepository instantiates the repository.
func NewPreferenceRepository(db Querier) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUser(ctx context.Context, userID string) (*domain.UserPreference, error) {
	return scanPreferenceRow(r.db.QueryRow(ctx,
		`SELECT `+preferenceColumns+` FROM user_preferences WHERE user_id=$1`, userID))
}

func (r *preferenceRepository) Create(ctx context.Context, pref *domain.UserPreference) error {
	const query = `
        INSERT INTO user_preferences (user_id, email_notifications, push_notifications,
            project_updates, task_assignments, system_maintenance, dark_mode, compact_view,
            language, timezone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		pref.UserID,
		pref.EmailNotifications,
		pref.PushNotifications,
		pref.ProjectUpdates,
		pref.TaskAssignments,
		pref.SystemMaintenance,
		pref.DarkMode,
		pref.CompactView,
		pref.Language,
		pref.Timezone,
	).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
}

func (r *preferenceRepository) Update(ctx context.Context, userID string, update PreferenceUpdate) (*domain.UserPreference, error) {
	builder := psql.Update("user_preferences").Set("updated_at", squirrel.Expr("NOW()"))
	if update.EmailNotifications != nil {
		builder = builder.Set("email_notifications", *update.EmailNotifications)
	}
	if update.PushNotifications != nil {
		builder = builder.Set("push_notifications", *update.PushNotifications)
	}
	if update.ProjectUpdates != nil {
		builder = builder.Set("project_updates", *update.ProjectUpdates)
	}
	if update.TaskAssignments != nil {
		builder = builder.Set("task_assignments", *update.TaskAssignments)
	}
	if update.SystemMaintenance != nil {
		builder = builder.Set("system_maintenance", *update.SystemMaintenance)
	}
	if update.DarkMode != nil {
		builder = builder.Set("dark_mode", *update.DarkMode)
	}
	if update.CompactView != nil {
		builder = builder.Set("compact_view", *update.CompactView)
	}
	if update.Language != nil {
		builder = builder.Set("language", *update.Language)
	}
	if update.Timezone != nil {
		builder = builder.Set("timezone", *update.Timezone)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"user_id": userID}).
		Suffix("RETURNING " + preferenceColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanPreferenceRow(r.db.QueryRow(ctx, query, args...))
}

func scanPreferenceRow(row pgx.Row) (*domain.UserPreference, error) {
	var p domain.UserPreference
	if err := row.Scan(
		&p.ID, &p.UserID, &p.EmailNotifications, &p.PushNotifications, &p.ProjectUpdates,
		&p.TaskAssignments, &p.SystemMaintenance, &p.DarkMode, &p.CompactView,
		&p.Language, &p.Timezone, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
