package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Nastia-N/shareit/util/apperr"
)

func TestKindAndStatus(t *testing.T) {
	cases := []struct {
		err    error
		kind   apperr.Kind
		status int
	}{
		{apperr.NotFound("user not found"), apperr.KindNotFound, http.StatusNotFound},
		{apperr.Validation("no fields to update"), apperr.KindValidation, http.StatusBadRequest},
		{apperr.Forbidden("access denied"), apperr.KindForbidden, http.StatusForbidden},
		{apperr.Conflict("email already in use"), apperr.KindConflict, http.StatusConflict},
		{errors.New("pg: connection refused"), apperr.KindInternal, http.StatusInternalServerError},
		{nil, apperr.KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := apperr.KindOf(tc.err); got != tc.kind {
			t.Errorf("KindOf(%v) = %v; want %v", tc.err, got, tc.kind)
		}
		if got := apperr.HTTPStatus(tc.err); got != tc.status {
			t.Errorf("HTTPStatus(%v) = %d; want %d", tc.err, got, tc.status)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("approve booking: %w", apperr.Forbidden("access denied"))
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("wrapped kind lost: %v", err)
	}
}

func TestUserMessage(t *testing.T) {
	if msg := apperr.UserMessage(apperr.NotFound("item not found")); msg != "item not found" {
		t.Fatalf("domain message: %q", msg)
	}
	if msg := apperr.UserMessage(errors.New("pg: connection refused")); msg != "internal server error" {
		t.Fatalf("internal details must not leak: %q", msg)
	}
}
