package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newSearchServer(t *testing.T, customers map[string]SearchResult) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/customer/search" {
			http.NotFound(w, r)
			return
		}
		name := r.URL.Query().Get("name")
		result, ok := customers[name]
		if !ok {
			result = SearchResult{Found: false}
		}
		json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestCustomerResolverExisting(t *testing.T) {
	srv, _ := newSearchServer(t, map[string]SearchResult{
		"Laura Gomez": {
			Found:      true,
			CustomerID: "8f14e45f-ea3e-4f9f-b07a-0242ac120002",
			Name:       "Laura Gomez",
			Email:      "laura@example.com",
			Address:    "Cra 7 #45-12",
		},
	})
	resolver := NewCustomerResolver(NewClient(srv.URL, nil))

	var form CustomerForm
	msg, err := resolver.Resolve(context.Background(), &form, "  Laura Gomez  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgExistingCustomer {
		t.Errorf("message = %q, want %q", msg, MsgExistingCustomer)
	}
	if form.CustomerID != "8f14e45f-ea3e-4f9f-b07a-0242ac120002" {
		t.Errorf("customer id = %q", form.CustomerID)
	}
	if form.Email != "laura@example.com" || form.Address != "Cra 7 #45-12" {
		t.Errorf("form = %+v, want server fields", form)
	}
	if !form.Locked {
		t.Error("existing customer must lock the form")
	}
}

func TestCustomerResolverNew(t *testing.T) {
	srv, _ := newSearchServer(t, nil)
	resolver := NewCustomerResolver(NewClient(srv.URL, nil))

	// Leftovers from a previous lookup must be cleared.
	form := CustomerForm{
		CustomerID: "stale-id",
		Email:      "stale@example.com",
		Address:    "stale",
		Locked:     true,
	}
	msg, err := resolver.Resolve(context.Background(), &form, "Jane Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != MsgNewCustomer {
		t.Errorf("message = %q, want %q", msg, MsgNewCustomer)
	}
	if form.CustomerID != "" || form.Email != "" || form.Address != "" {
		t.Errorf("form = %+v, want cleared id, email, and address", form)
	}
	if form.Name != "Jane Doe" {
		t.Errorf("name = %q, want Jane Doe", form.Name)
	}
	if form.Locked {
		t.Error("new customer must leave the form unlocked")
	}
}

func TestCustomerResolverEmptyName(t *testing.T) {
	srv, calls := newSearchServer(t, nil)
	resolver := NewCustomerResolver(NewClient(srv.URL, nil))

	var form CustomerForm
	msg, err := resolver.Resolve(context.Background(), &form, "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "" {
		t.Errorf("message = %q, want empty", msg)
	}
	if *calls != 0 {
		t.Errorf("server calls = %d, want 0", *calls)
	}
}

func TestCustomerResolverServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	resolver := NewCustomerResolver(NewClient(srv.URL, nil))

	form := CustomerForm{
		CustomerID: "kept-id",
		Name:       "Kept Name",
		Email:      "kept@example.com",
		Locked:     true,
	}
	before := form
	msg, err := resolver.Resolve(context.Background(), &form, "Laura Gomez")
	if err == nil {
		t.Fatal("expected an error")
	}
	if msg != MsgSearchError {
		t.Errorf("message = %q, want %q", msg, MsgSearchError)
	}
	if form != before {
		t.Errorf("form = %+v, want prior state kept on failure", form)
	}
}
