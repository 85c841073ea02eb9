package console

import (
	"context"
	"net/url"
	"strings"
)

// CustomerForm is the explicit state behind the customer block of the
// order-building views. Locked means email and address are not editable
// because an existing customer's data backs them.
type CustomerForm struct {
	CustomerID string
	Name       string
	Email      string
	Address    string
	Locked     bool
}

// CustomerResolver looks a customer up by name and rewrites the form to
// the existing-customer or new-customer state.
type CustomerResolver struct {
	client *Client
}

func NewCustomerResolver(client *Client) *CustomerResolver {
	return &CustomerResolver{client: client}
}

// Resolve searches for name. An empty trimmed name is a no-op. On a
// transport or server failure the form keeps its prior state. The
// returned message is what the view surfaces.
func (r *CustomerResolver) Resolve(ctx context.Context, form *CustomerForm, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	var result SearchResult
	if err := r.client.Get(ctx, "/customer/search?name="+url.QueryEscape(name), &result); err != nil {
		return MsgSearchError, err
	}

	form.Name = name
	if result.Found {
		form.CustomerID = result.CustomerID
		form.Email = result.Email
		form.Address = result.Address
		form.Locked = true
		return MsgExistingCustomer, nil
	}

	form.CustomerID = ""
	form.Email = ""
	form.Address = ""
	form.Locked = false
	return MsgNewCustomer, nil
}
