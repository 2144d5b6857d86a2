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

type fakeSupplierRepo struct{}

func (f *fakeSupplierRepo) Create(_ context.Context, _ *domain.Supplier) error { return nil }
func (f *fakeSupplierRepo) GetByID(_ context.Context, _ string) (*domain.Supplier, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]domain.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(_ context.Context, _ string, _ repository.SupplierUpdate) (*domain.Supplier, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeSupplierRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

type fakePurchaseOrderRepo struct {
	orders []domain.PurchaseOrder
}

func (f *fakePurchaseOrderRepo) Create(_ context.Context, po *domain.PurchaseOrder) error {
	po.ID = fmt.Sprintf("po-%d", len(f.orders)+1)
	f.orders = append(f.orders, *po)
	return nil
}

func (f *fakePurchaseOrderRepo) GetByID(_ context.Context, id string) (*domain.PurchaseOrder, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			po := f.orders[i]
			return &po, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePurchaseOrderRepo) List(_ context.Context, _, _ int) ([]domain.PurchaseOrder, error) {
	return f.orders, nil
}

func (f *fakePurchaseOrderRepo) Update(_ context.Context, _ string, _ repository.PurchaseOrderUpdate) (*domain.PurchaseOrder, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakePurchaseOrderRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

func (f *fakePurchaseOrderRepo) ExistsByPONumber(_ context.Context, poNumber string) (bool, error) {
	for i := range f.orders {
		if f.orders[i].PONumber == poNumber {
			return true, nil
		}
	}
	return false, nil
}

func TestCreatePurchaseOrderDuplicateNumberConflicts(t *testing.T) {
	repo := &fakePurchaseOrderRepo{}
	handler := NewProcurementHandler(&fakeSupplierRepo{}, repo)

	app := newTestApp()
	app.Post("/purchase-orders", handler.CreatePurchaseOrder)

	first := doJSON(t, app, http.MethodPost, "/purchase-orders", map[string]any{"po_number": "PO-1001"})
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/purchase-orders", map[string]any{"po_number": "PO-1001"})
	require.Equal(t, http.StatusConflict, second.StatusCode)
	assert.Equal(t, "CONFLICT", decodeErrorCode(t, second))
	assert.Len(t, repo.orders, 1)
}
