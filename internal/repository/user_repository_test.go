package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if !isUniqueViolation(pgErr) {
		t.Fatal("23505 must be detected as a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert user: %w", pgErr)) {
		t.Fatal("wrapped 23505 must be detected")
	}
}

func TestIsUniqueViolationOtherErrors(t *testing.T) {
	if isUniqueViolation(nil) {
		t.Fatal("nil is not a unique violation")
	}
	if isUniqueViolation(errors.New("connection refused")) {
		t.Fatal("generic errors are not unique violations")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violations are not unique violations")
	}
}
