package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const profileColumns = `id, email, first_name, last_name, avatar_url, bio, job_title, phone,
       status, last_login, account_locked, created_at, updated_at`

// ProfileUpdate lists the mutable profile fields. Nil fields are untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	AvatarURL *string
	Bio       *string
	JobTitle  *string
	Phone     *string
}

// ProfileRepository persists application-level user records.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, id string, update ProfileUpdate) (*domain.Profile, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetAccountLocked(ctx context.Context, id string, locked bool) error
	Delete(ctx context.Context, id string) error
}

type profileRepository struct {
	db Querier
}

// NewProfileRepository instantiates the repository.
func NewProfileRepository(db Querier) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a profile sharing the id of its users row.
func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (id, email)
        VALUES ($1,$2)
        RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query, profile.ID, profile.Email).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return scanProfileRow(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id=$1`, id))
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return scanProfileRow(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email=$1`, email))
}

func (r *profileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Profile{}
	for rows.Next() {
		profile, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *profile)
	}
	return result, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, id string, update ProfileUpdate) (*domain.Profile, error) {
	builder := psql.Update("profiles").Set("updated_at", squirrel.Expr("NOW()"))
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.JobTitle != nil {
		builder = builder.Set("job_title", *update.JobTitle)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + profileColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanProfileRow(r.db.QueryRow(ctx, query, args...))
}

func (r *profileRepository) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE profiles SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) SetAccountLocked(ctx context.Context, id string, locked bool) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE profiles SET account_locked=$1, updated_at=NOW() WHERE id=$2`, locked, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProfileRow(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.AvatarURL, &p.Bio, &p.JobTitle,
		&p.Phone, &p.Status, &p.LastLogin, &p.AccountLocked, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
