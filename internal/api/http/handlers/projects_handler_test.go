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

type fakeProjectRepo struct{}

func (f *fakeProjectRepo) Create(_ context.Context, _ *domain.Project) error { return nil }
func (f *fakeProjectRepo) GetByID(_ context.Context, _ string) (*domain.Project, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeProjectRepo) List(_ context.Context, _, _ int) ([]domain.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) Update(_ context.Context, _ string, _ repository.ProjectUpdate) (*domain.Project, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeProjectRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

type fakeWorkOrderRepo struct {
	orders []domain.WorkOrder
}

func (f *fakeWorkOrderRepo) Create(_ context.Context, wo *domain.WorkOrder) error {
	wo.ID = fmt.Sprintf("wo-%d", len(f.orders)+1)
	f.orders = append(f.orders, *wo)
	return nil
}

func (f *fakeWorkOrderRepo) GetByID(_ context.Context, id string) (*domain.WorkOrder, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			wo := f.orders[i]
			return &wo, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeWorkOrderRepo) List(_ context.Context, _, _ int) ([]domain.WorkOrder, error) {
	return f.orders, nil
}

func (f *fakeWorkOrderRepo) Update(_ context.Context, _ string, _ repository.WorkOrderUpdate) (*domain.WorkOrder, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeWorkOrderRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (f *fakeWorkOrderRepo) ExistsByWorkOrderID(_ context.Context, workOrderID string) (bool, error) {
	for i := range f.orders {
		if f.orders[i].WorkOrderID == workOrderID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateWorkOrderDuplicateIDConflicts(t *testing.T) {
	repo := &fakeWorkOrderRepo{}
	handler := NewProjectsHandler(&fakeProjectRepo{}, repo)

	app := newTestApp()
	app.Post("/manufacturing/work-orders", handler.CreateWorkOrder)

	body := map[string]any{"work_order_id": "WO-2001", "product": "Widget"}
	first := doJSON(t, app, http.MethodPost, "/manufacturing/work-orders", body)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/manufacturing/work-orders", map[string]any{
		"work_order_id": "WO-2001",
		"product":       "Widget Mk II",
	})
	require.Equal(t, http.StatusConflict, second.StatusCode)
	assert.Equal(t, "CONFLICT", decodeErrorCode(t, second))
	assert.Len(t, repo.orders, 1)
}
