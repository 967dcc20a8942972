package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSearchRequiresQuery(t *testing.T) {
	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	h := NewMovieHandler(nil) // rejected before the catalog is consulted
	app.Get("/api/v1/movies/search", h.Search)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/movies/search", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without a query, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "Search query is required" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
}
