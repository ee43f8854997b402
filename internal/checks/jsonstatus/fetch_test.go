package jsonstatus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/opsgrid/checks/internal/check"
	"github.com/opsgrid/checks/internal/nagios"
)

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Write([]byte(`{"web": "PASS"}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	body, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != `{"web": "PASS"}` {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestHTTPFetcherSchemeDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	// Strip the scheme; the fetcher should default to http://.
	bare := strings.TrimPrefix(server.URL, "http://")

	fetcher := NewHTTPFetcher(5 * time.Second)
	if _, err := fetcher.Fetch(context.Background(), bare); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPFetcherNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	var transportErr *check.TransportError
	if !errors.As(err, &transportErr) {
		t.Errorf("expected TransportError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("diagnostic should mention the HTTP code: %v", err)
	}
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing listening any more

	fetcher := NewHTTPFetcher(2 * time.Second)
	_, err := fetcher.Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("expected error for unreachable URL")
	}
	var transportErr *check.TransportError
	if !errors.As(err, &transportErr) {
		t.Errorf("expected TransportError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "connection") {
		t.Errorf("diagnostic should mention the connection failure: %v", err)
	}
}

// End-to-end over a real listener: fetch, parse, classify, aggregate.
func TestRunAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Name Look up service": "WARN", "File Transfer": "PASS", "Database Connection": "FAIL", "Security Service": "PASS"}`))
	}))
	defer server.Close()

	verdict, err := Run(context.Background(), NewHTTPFetcher(5*time.Second), server.URL, "PASS", "WARN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Status != nagios.StatusCritical {
		t.Errorf("status = %v, expected CRITICAL", verdict.Status)
	}
	expected := "Status of all attributes: OK: File Transfer, Security Service / WARNING: Name Look up service / CRITICAL: Database Connection / UNKNOWN: 0"
	if verdict.Message != expected {
		t.Errorf("message = %q, expected %q", verdict.Message, expected)
	}
}
