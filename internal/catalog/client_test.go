package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fasco-shop/storefront/pkg/config"
	pkgerrors "github.com/fasco-shop/storefront/pkg/errors"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(config.CatalogConfig{BaseURL: server.URL}, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestFetchProductsDefaultsOptionalFields(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"slug":"denim-jacket","title":"Denim Jacket","price":80}]`))
	})

	products, err := client.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.Sizes == nil || p.Colors == nil || p.Tags == nil || p.Collections == nil || p.Images == nil {
		t.Fatal("expected optional slices to be defaulted")
	}
}

func TestFetchBySlugNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	_, err := client.FetchBySlug(context.Background(), "missing")
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found coded error, got %v", err)
	}
}

func TestFetchBySlugRequiresSlug(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.FetchBySlug(context.Background(), "  ")
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation coded error, got %v", err)
	}
}

func TestFetchProductsUpstreamFailure(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchProducts(context.Background())
	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency coded error, got %v", err)
	}
}
