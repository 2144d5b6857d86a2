package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
)

type fakeEmployeeRepo struct {
	employees []domain.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	e.ID = fmt.Sprintf("emp-%d", len(f.employees)+1)
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(_ context.Context, _, _ int) ([]domain.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ repository.EmployeeUpdate) (*domain.Employee, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (f *fakeEmployeeRepo) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	for i := range f.employees {
		if f.employees[i].EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateEmployeeDuplicateIDConflicts(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	handler := NewHRHandler(repo)

	app := newTestApp()
	app.Post("/employees", handler.CreateEmployee)

	body := map[string]any{"employee_id": "EMP-001", "name": "Grace", "email": "grace@example.com"}
	first := doJSON(t, app, http.MethodPost, "/employees", body)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/employees", map[string]any{
		"employee_id": "EMP-001",
		"name":        "Another Grace",
		"email":       "grace2@example.com",
	})
	require.Equal(t, http.StatusConflict, second.StatusCode)
	assert.Equal(t, "CONFLICT", decodeErrorCode(t, second))
	assert.Len(t, repo.employees, 1)
}
