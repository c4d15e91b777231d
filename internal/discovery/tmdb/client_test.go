package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/config"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.TMDBConfig{
		APIKey:       "test-key",
		BaseURL:      serverURL,
		ImageBaseURL: "https://image.tmdb.org/t/p/original",
		Language:     "de",
		Timeout:      5,
	}, zerolog.Nop())
}

func TestResolveArtwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tt0133093" {
			t.Errorf("path = %q, want /tt0133093", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Errorf("api_key = %q, want test-key", q.Get("api_key"))
		}
		if q.Get("language") != "de" {
			t.Errorf("language = %q, want de", q.Get("language"))
		}
		if q.Get("external_source") != "imdb_id" {
			t.Errorf("external_source = %q, want imdb_id", q.Get("external_source"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"movie_results": [{"id": 603, "title": "The Matrix", "backdrop_path": "/abc123.jpg"}]}`))
	}))
	defer server.Close()

	got, err := newTestClient(server.URL).ResolveArtwork(context.Background(), "tt0133093")
	if err != nil {
		t.Fatalf("ResolveArtwork() error = %v", err)
	}
	want := "https://image.tmdb.org/t/p/original/abc123.jpg"
	if got != want {
		t.Errorf("ResolveArtwork() = %q, want %q", got, want)
	}
}

func TestResolveArtwork_SentinelCases(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no movie results", `{"movie_results": []}`},
		{"empty backdrop", `{"movie_results": [{"id": 603, "title": "The Matrix", "backdrop_path": ""}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := newTestClient(server.URL).ResolveArtwork(context.Background(), "tt0133093")
			if err != nil {
				t.Fatalf("ResolveArtwork() error = %v", err)
			}
			if got != ArtworkUnavailable {
				t.Errorf("ResolveArtwork() = %q, want the sentinel", got)
			}
		})
	}
}

func TestResolveArtwork_EmptyID(t *testing.T) {
	got, err := newTestClient("http://unused.invalid").ResolveArtwork(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveArtwork() error = %v", err)
	}
	if got != ArtworkUnavailable {
		t.Errorf("ResolveArtwork(\"\") = %q, want the sentinel", got)
	}
}

func TestResolveArtwork_MissingAPIKey(t *testing.T) {
	client := NewClient(config.TMDBConfig{BaseURL: "http://unused.invalid"}, zerolog.Nop())
	if _, err := client.ResolveArtwork(context.Background(), "tt0133093"); !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("ResolveArtwork() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestResolveArtwork_APIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAPIError},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"server error", http.StatusInternalServerError, ErrAPIError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"status_code": 7, "status_message": "nope"}`))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).ResolveArtwork(context.Background(), "tt0133093")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ResolveArtwork() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
