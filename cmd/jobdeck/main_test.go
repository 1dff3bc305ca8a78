package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCallbackRejectsBadState(t *testing.T) {
	credCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := callbackHandler("expected-state", credCh, errCh)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=wrong&credential=tok", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for state mismatch, got %d", rec.Code)
	}
	select {
	case err := <-errCh:
		if err == nil {
			t.Error("expected a CSRF error")
		}
	default:
		t.Error("expected an error on the error channel")
	}
	select {
	case <-credCh:
		t.Error("credential must not be forwarded on state mismatch")
	default:
	}
}

func TestCallbackRejectsMissingCredential(t *testing.T) {
	credCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := callbackHandler("s", credCh, errCh)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=s", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing credential, got %d", rec.Code)
	}
	if len(errCh) != 1 {
		t.Error("expected an error on the error channel")
	}
}

func TestCallbackForwardsCredential(t *testing.T) {
	credCh := make(chan string, 1)
	errCh := make(chan error, 1)
	handler := callbackHandler("s", credCh, errCh)

	req := httptest.NewRequest(http.MethodGet, "/callback?state=s&credential=id-token-123", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	select {
	case got := <-credCh:
		if got != "id-token-123" {
			t.Errorf("expected credential forwarded, got %q", got)
		}
	default:
		t.Error("expected credential on the channel")
	}
	if len(errCh) != 0 {
		t.Error("expected no errors for a valid callback")
	}
}
