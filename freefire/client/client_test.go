package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(baseURL string) *DefaultClient {
	return New(Params{
		BaseURL:   baseURL,
		UserAgent: "test/1.0",
		Region:    "bd",
		UserUID:   "svc-user",
		APIKey:    "svc-key",
	})
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/main/games/freefire/account/api" {
			t.Fatalf("unexpected path: %s", got)
		}
		q := r.URL.Query()
		if q.Get("sectionName") != "AllData" {
			t.Fatalf("expected sectionName=AllData, got %q", q.Get("sectionName"))
		}
		if q.Get("PlayerUid") != "123456789" {
			t.Fatalf("expected PlayerUid=123456789, got %q", q.Get("PlayerUid"))
		}
		if q.Get("region") != "bd" {
			t.Fatalf("expected region=bd, got %q", q.Get("region"))
		}
		if q.Get("useruid") != "svc-user" || q.Get("api") != "svc-key" {
			t.Fatalf("credentials not forwarded: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": {"AccountInfo": {"AccountName": "Player1", "AccountLevel": 55}}}`))
	}))
	defer server.Close()

	raw, err := newTestClient(server.URL).FetchProfile(context.Background(), server.Client(), "123456789")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := raw["result"]; !ok {
		t.Fatalf("expected raw result key, got %v", raw)
	}
}

func TestFetchProfileBadStatus(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestClient(server.URL).FetchProfile(context.Background(), server.Client(), "1")
		if !errors.Is(err, ErrServiceUnavailable) {
			t.Errorf("status %d: expected ErrServiceUnavailable, got %v", status, err)
		}
		server.Close()
	}
}

func TestFetchProfileMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchProfile(context.Background(), server.Client(), "1")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestFetchProfileTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := newTestClient(server.URL).FetchProfile(context.Background(), http.DefaultClient, "1")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}
