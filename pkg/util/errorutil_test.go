package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorMapsNoRows(t *testing.T) {
	derr := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, derr)
	assert.Equal(t, "NOT_FOUND", derr.Code)
	assert.Equal(t, http.StatusNotFound, derr.HTTPStatus)
}

func TestToDomainErrorMapsWrappedNoRows(t *testing.T) {
	derr := ToDomainError(fmt.Errorf("get ticket: %w", pgx.ErrNoRows))
	require.NotNil(t, derr)
	assert.Equal(t, "NOT_FOUND", derr.Code)
}

func TestToDomainErrorMapsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "purchase_orders_po_number_key"}

	derr := ToDomainError(fmt.Errorf("create purchase order: %w", pgErr))
	require.NotNil(t, derr)
	assert.Equal(t, "CONFLICT", derr.Code)
	assert.Equal(t, http.StatusConflict, derr.HTTPStatus)
	assert.ErrorIs(t, derr, pgErr)
}

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewForbidden("nope")

	derr := ToDomainError(original)
	require.NotNil(t, derr)
	assert.Equal(t, "FORBIDDEN", derr.Code)
	assert.Equal(t, http.StatusForbidden, derr.HTTPStatus)
	assert.Equal(t, "nope", derr.Message)
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection reset")

	derr := ToDomainError(cause)
	require.NotNil(t, derr)
	assert.Equal(t, "INTERNAL_ERROR", derr.Code)
	assert.Equal(t, http.StatusInternalServerError, derr.HTTPStatus)
	assert.ErrorIs(t, derr, cause)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := NewValidationError("bad input", map[string]any{"field": "email"})

	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "VALIDATION_FAILED", derr.Code)
	assert.Equal(t, http.StatusBadRequest, derr.HTTPStatus)
	assert.Equal(t, "email", derr.Details["field"])
}
