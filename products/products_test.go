package products

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListCacheKeyCarriesVersionStamp(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products?instock=true&sort=price_asc", nil)

	key := listCacheKey(context.Background(), req)

	if !strings.HasPrefix(key, "products:list:v") {
		t.Errorf("key %q lacks version stamp prefix", key)
	}
	if !strings.HasSuffix(key, ":instock=true&sort=price_asc") {
		t.Errorf("key %q does not end with the raw query", key)
	}
	version := strings.TrimSuffix(strings.TrimPrefix(key, "products:list:v"), ":instock=true&sort=price_asc")
	if version == "" {
		t.Errorf("key %q has an empty version segment", key)
	}
}

func TestListCacheKeySeparatesQueries(t *testing.T) {
	a := httptest.NewRequest(http.MethodGet, "/api/products?category=roses", nil)
	b := httptest.NewRequest(http.MethodGet, "/api/products?category=tulips", nil)

	if listCacheKey(context.Background(), a) == listCacheKey(context.Background(), b) {
		t.Error("different filter combinations share one cache key")
	}
}
