package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/cache"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/catalog"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/menu"
	"github.com/jase25chiappini-cloud/pizza-peppers-website-sub000/internal/options"

	"github.com/gin-gonic/gin"
)

type staticFetcher struct{}

func (staticFetcher) Fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	return map[string]interface{}{
		"categories": []interface{}{},
		"products":   []interface{}{},
	}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	loader := menu.NewLoader(
		staticFetcher{},
		catalog.NewNormalizer(nil),
		cache.New(cache.NewInMemoryStore()),
		"http://pos.local/menu",
	)
	return NewRouter(menu.NewHandler(loader, options.NewResolver(nil)))
}

func TestHealthCheck(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestPublicMenuRouteRegistered(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/public/menu", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}
