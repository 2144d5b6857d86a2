package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const employeeColumns = `id, employee_id, name, email, phone, department, position, salary,
       hire_date, status, first_name, last_name, created_by, created_at, updated_at`

// EmployeeUpdate lists the mutable employee fields. Nil fields are untouched.
type EmployeeUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	Department *string
	Position   *string
	Salary     *float64
	HireDate   *time.Time
	Status     *string
	FirstName  *string
	LastName   *string
}

// EmployeeRepository persists HR records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	Update(ctx context.Context, id string, update EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

type employeeRepository struct {
	db Querier
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(db Querier) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (employee_id, name, email, phone, department, position, salary,
                               hire_date, status, first_name, last_name, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Department,
		employee.Position,
		employee.Salary,
		employee.HireDate,
		employee.Status,
		employee.FirstName,
		employee.LastName,
		employee.CreatedBy,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return scanEmployeeRow(r.db.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id=$1`, id))
}

func (r *employeeRepository) List(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		employee, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, id string, update EmployeeUpdate) (*domain.Employee, error) {
	builder := psql.Update("employees").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}
	if update.Salary != nil {
		builder = builder.Set("salary", *update.Salary)
	}
	if update.HireDate != nil {
		builder = builder.Set("hire_date", *update.HireDate)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + employeeColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployeeRow(r.db.QueryRow(ctx, query, args...))
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id=$1)`, employeeID).Scan(&exists)
	return exists, err
}

func scanEmployeeRow(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	if err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Name, &e.Email, &e.Phone, &e.Department, &e.Position,
		&e.Salary, &e.HireDate, &e.Status, &e.FirstName, &e.LastName, &e.CreatedBy,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
