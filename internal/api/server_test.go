package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cinedaily/cinedaily/internal/config"
	"github.com/cinedaily/cinedaily/internal/testutil"
)

func setupTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	tdb := testutil.NewTestDB(t)

	cfg := &config.Config{
		Discovery: config.DiscoveryConfig{
			Netzkino: config.NetzkinoConfig{
				BaseURL: "http://unused.invalid/search",
				Env:     "test",
				Timeout: 1,
			},
			TMDB: config.TMDBConfig{
				APIKey:       "test-key",
				BaseURL:      "http://unused.invalid/find",
				ImageBaseURL: "https://image.tmdb.org/t/p/original",
				Language:     "de",
				Timeout:      1,
			},
		},
	}

	server, err := NewServer(tdb.Conn, cfg, tdb.Logger)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	return server, tdb.Close
}

func TestHealthCheck(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("status = %q, want %q", response["status"], "ok")
	}
}

func TestStatusEndpoint(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if count, ok := response["entryCount"].(float64); !ok || count != 0 {
		t.Errorf("entryCount = %v, want 0", response["entryCount"])
	}

	// A broken database must surface as an error, not as an empty catalog.
	cleanup()

	req = httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status code after closing database = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestSearchEndpoint_RejectsInvalidTerm(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	for _, query := range []string{"", "Matrix", "mat rix", "matrix1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?query="+url.QueryEscape(query), nil)
		rec := httptest.NewRecorder()

		server.echo.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("search %q status = %d, want %d", query, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestCatalogEndpoints(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	body := `{"slug": "some-movie", "title": "Some Movie", "year": "1999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/movies/some-movie", nil)
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/movies/no-such-movie", nil)
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get missing status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/active", nil)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("users/active status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/active", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("users/active with bad token status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticatedUserFlow(t *testing.T) {
	server, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	user, err := server.usersService.SaveActive(ctx, "12345", "moviefan")
	if err != nil {
		t.Fatalf("SaveActive() error = %v", err)
	}

	token := loginAs(t, server, user.ProviderID, user.Username)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/active", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("users/active status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["providerId"] != "12345" {
		t.Errorf("providerId = %q, want %q", response["providerId"], "12345")
	}

	// Watchlist round trip through the protected group.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users/watchlist/12345/some-movie", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("watchlist add status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/watchlist/12345/some-movie", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	server.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("watchlist check status = %d, want %d", rec.Code, http.StatusOK)
	}

	var check map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &check); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !check["inWatchlist"] {
		t.Error("inWatchlist = false after adding")
	}
}

func loginAs(t *testing.T, server *Server, providerID, username string) string {
	t.Helper()
	token, err := server.authService.GenerateToken(&stubPrincipal{id: providerID, login: username})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

type stubPrincipal struct {
	id    string
	login string
}

func (p *stubPrincipal) ID() string { return p.id }

func (p *stubPrincipal) Attribute(name string) (string, bool) {
	if name == "login" {
		return p.login, true
	}
	return "", false
}
