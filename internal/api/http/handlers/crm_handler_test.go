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

type fakeCustomerRepo struct {
	customers []domain.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	c.ID = fmt.Sprintf("cust-%d", len(f.customers)+1)
	f.customers = append(f.customers, *c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerRepo) List(_ context.Context, _, _ int) ([]domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, _ string, _ repository.CustomerUpdate) (*domain.Customer, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakeCustomerRepo) Delete(_ context.Context, _ string) error {
	return pgx.ErrNoRows
}

type fakeSalesLeadRepo struct{}

func (f *fakeSalesLeadRepo) Create(_ context.Context, _ *domain.SalesLead) error { return nil }
func (f *fakeSalesLeadRepo) GetByID(_ context.Context, _ string) (*domain.SalesLead, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeSalesLeadRepo) List(_ context.Context, _, _ int) ([]domain.SalesLead, error) {
	return nil, nil
}
func (f *fakeSalesLeadRepo) Update(_ context.Context, _ string, _ repository.SalesLeadUpdate) (*domain.SalesLead, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeSalesLeadRepo) Delete(_ context.Context, _ string) error { return pgx.ErrNoRows }

// Customer emails are deliberately not unique; two records may share one
// address.
func TestCreateCustomerAllowsDuplicateEmail(t *testing.T) {
	repo := &fakeCustomerRepo{}
	handler := NewCRMHandler(repo, &fakeSalesLeadRepo{})

	app := newTestApp()
	app.Post("/customers", handler.CreateCustomer)

	body := map[string]any{"name": "Acme GmbH", "email": "shared@acme.test"}
	first := doJSON(t, app, http.MethodPost, "/customers", body)
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/customers", map[string]any{
		"name":  "Acme Logistics",
		"email": "shared@acme.test",
	})
	require.Equal(t, http.StatusCreated, second.StatusCode)

	require.Len(t, repo.customers, 2)
	assert.Equal(t, repo.customers[0].Email, repo.customers[1].Email)
}

func TestCreateCustomerRequiresNameAndEmail(t *testing.T) {
	handler := NewCRMHandler(&fakeCustomerRepo{}, &fakeSalesLeadRepo{})

	app := newTestApp()
	app.Post("/customers", handler.CreateCustomer)

	resp := doJSON(t, app, http.MethodPost, "/customers", map[string]any{"name": "No Email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", decodeErrorCode(t, resp))
}
