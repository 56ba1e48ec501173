package fetchers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"silomet/internal/silo"
)

const sampleBody = `Date Rain T.Max T.Min VP Radn FAO56 Evap Code
20200101 0.0 31.2 19.4 18.1 28.7 6.5 7.2 222222
`

func TestSILOClient_Fetch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		if r.URL.Path != "/DataDrillDataset.php" {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	client := NewSILOClient(server.URL, "user", "secret")
	body, err := client.Fetch(context.Background(), -27.5, 151.9, 2000, 2020, silo.FormatFAO56)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != sampleBody {
		t.Errorf("Unexpected body: %q", body)
	}

	want := map[string]string{
		"format":   string(silo.FormatFAO56),
		"lat":      "-27.5000",
		"lon":      "151.9000",
		"start":    "20000101",
		"finish":   "20201231",
		"username": "user",
		"password": "secret",
	}
	for key, value := range want {
		if gotQuery[key] != value {
			t.Errorf("Query param %s = %q, want %q", key, gotQuery[key], value)
		}
	}
}

func TestSILOClient_FetchUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewSILOClient(server.URL, "user", "wrong")
	_, err := client.Fetch(context.Background(), -27.5, 151.9, 2000, 2020, silo.FormatFAO56)
	if err == nil {
		t.Fatal("Expected authentication error, got nil")
	}
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Errorf("Expected AuthenticationError, got %T: %v", err, err)
	}
}

func TestSILOClient_FetchAuthErrorInBody(t *testing.T) {
	// SILO reports bad credentials in a 200 response body.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Error: invalid username or password supplied"))
	}))
	defer server.Close()

	client := NewSILOClient(server.URL, "user", "wrong")
	_, err := client.Fetch(context.Background(), -27.5, 151.9, 2000, 2020, silo.FormatFAO56)
	if err == nil {
		t.Fatal("Expected authentication error, got nil")
	}
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Errorf("Expected AuthenticationError, got %T: %v", err, err)
	}
}

func TestSILOClient_FetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewSILOClient(server.URL, "user", "secret")
	_, err := client.Fetch(context.Background(), -27.5, 151.9, 2000, 2020, silo.FormatFAO56)
	if err == nil {
		t.Fatal("Expected error for server failure, got nil")
	}
	var authErr *AuthenticationError
	if errors.As(err, &authErr) {
		t.Error("Server error should not be reported as an authentication failure")
	}
}

func TestSILOClient_FetchContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(sampleBody))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewSILOClient(server.URL, "user", "secret")
	if _, err := client.Fetch(ctx, -27.5, 151.9, 2000, 2020, silo.FormatFAO56); err == nil {
		t.Error("Expected error with cancelled context, got nil")
	}
}
