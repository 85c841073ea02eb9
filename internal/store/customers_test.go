package store

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestSearchCustomer(t *testing.T) {
	seed := func(repos Repos) *Customer {
		customer := NewCustomer("Laura Gomez", "laura@example.com", "Cra 7 #45-12")
		repos.Customers.Create(context.Background(), customer)
		return customer
	}

	t.Run("existingName", func(t *testing.T) {
		repos := newMockRepos()
		router := newTestServer(repos, nil)
		customer := seed(repos)

		rec := doJSON(t, router, http.MethodGet, "/customer/search?name="+url.QueryEscape("Laura Gomez"), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var res customerSearchResult
		decodeBody(t, rec, &res)
		if !res.Found {
			t.Fatal("found = false, want true")
		}
		if res.CustomerID != customer.ID.String() {
			t.Errorf("customer_id = %q, want %q", res.CustomerID, customer.ID)
		}
		if res.Email != customer.Email || res.Address != customer.Address {
			t.Errorf("result = %+v, want seeded customer fields", res)
		}
	})

	t.Run("caseInsensitive", func(t *testing.T) {
		repos := newMockRepos()
		router := newTestServer(repos, nil)
		seed(repos)

		rec := doJSON(t, router, http.MethodGet, "/customer/search?name="+url.QueryEscape("laura gomez"), nil)
		var res customerSearchResult
		decodeBody(t, rec, &res)
		if !res.Found {
			t.Error("lookup should match regardless of case")
		}
	})

	t.Run("unknownName", func(t *testing.T) {
		repos := newMockRepos()
		router := newTestServer(repos, nil)
		seed(repos)

		rec := doJSON(t, router, http.MethodGet, "/customer/search?name="+url.QueryEscape("Jane Doe"), nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var res customerSearchResult
		decodeBody(t, rec, &res)
		if res.Found {
			t.Error("found = true, want false")
		}
		if res.CustomerID != "" {
			t.Errorf("customer_id = %q, want empty", res.CustomerID)
		}
	})

	t.Run("blankName", func(t *testing.T) {
		router := newTestServer(newMockRepos(), nil)
		rec := doJSON(t, router, http.MethodGet, "/customer/search?name=%20%20", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("repoError", func(t *testing.T) {
		repos := newMockRepos()
		repos.Customers.(*MockCustomerRepo).FindByNameFunc = func(ctx context.Context, name string) (*Customer, error) {
			return nil, errors.New("connection reset")
		}
		router := newTestServer(repos, nil)

		rec := doJSON(t, router, http.MethodGet, "/customer/search?name=Laura", nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}
