package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := NewDuplicateEmail()
	de := ToDomainError(err)
	if de.Code != "DUPLICATE_EMAIL" || de.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected mapping: %+v", de)
	}
}

func TestToDomainErrorWrapped(t *testing.T) {
	err := fmt.Errorf("update profile: %w", NewNotFound("user"))
	de := ToDomainError(err)
	if de.Code != "NOT_FOUND" || de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", de)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", de.HTTPStatus)
	}
}

func TestToDomainErrorGenericHidesDetail(t *testing.T) {
	de := ToDomainError(errors.New("pq: connection reset by peer"))
	if de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", de.HTTPStatus)
	}
	if de.Message != "internal server error" {
		t.Fatalf("message %q leaks internal detail", de.Message)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if de := ToDomainError(nil); de != nil {
		t.Fatalf("expected nil, got %+v", de)
	}
}

func TestInvalidCredentialsUniform(t *testing.T) {
	first := ToDomainError(NewInvalidCredentials())
	second := ToDomainError(NewInvalidCredentials())
	if first.Code != second.Code || first.Message != second.Message || first.HTTPStatus != second.HTTPStatus {
		t.Fatalf("invalid-credentials errors must be uniform: %+v vs %+v", first, second)
	}
	if first.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", first.HTTPStatus)
	}
}
