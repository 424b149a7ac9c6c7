package regcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("plate"); got != "ABC-123" {
			t.Errorf("expected plate query param, got %q", got)
		}
		if got := r.URL.Query().Get("owner_email"); got != "a@b.com" {
			t.Errorf("expected owner_email query param, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	valid, err := New(srv.URL).Check(context.Background(), "ABC-123", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected valid=true")
	}
}

func TestCheckInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"valid":false}`))
	}))
	defer srv.Close()

	valid, err := New(srv.URL).Check(context.Background(), "ABC-123", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Error("expected valid=false")
	}
}

func TestCheckNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Check(context.Background(), "ABC-123", "a@b.com")
	if err == nil {
		t.Fatal("non-2xx status must surface as an error")
	}
}

func TestCheckMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Check(context.Background(), "ABC-123", "a@b.com")
	if err == nil {
		t.Fatal("malformed payload must surface as an error")
	}
}

func TestCheckTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	checker := New(srv.URL, WithClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := checker.Check(context.Background(), "ABC-123", "a@b.com")
	if err == nil {
		t.Fatal("timeout must surface as an error")
	}
}

func TestCheckHeaderOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "sekrit" {
			t.Error("expected X-API-Key header")
		}
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, WithHeader("X-API-Key", "sekrit")).Check(context.Background(), "ABC-123", "a@b.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
