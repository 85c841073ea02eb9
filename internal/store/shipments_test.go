package store

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func seedShipment(t *testing.T, repos Repos, status string) *Shipment {
	t.Helper()
	customer := NewCustomer("Laura Gomez", "laura@example.com", "Cra 7")
	repos.Customers.Create(context.Background(), customer)
	order := NewOrder(customer.ID, "2026-01-05")
	repos.Orders.Create(context.Background(), order)
	shipment := NewShipment(order.ID, "", status)
	repos.Shipments.Create(context.Background(), shipment)
	return shipment
}

func TestCreateShipment(t *testing.T) {
	repos := newMockRepos()
	router := newTestServer(repos, nil)

	customer := NewCustomer("Mateo Rios", "mateo@example.com", "Av 742")
	repos.Customers.Create(context.Background(), customer)
	order := NewOrder(customer.ID, "2026-01-05")
	repos.Orders.Create(context.Background(), order)

	tests := []struct {
		name       string
		payload    map[string]any
		wantStatus int
	}{
		{
			name:       "defaultsApplied",
			payload:    map[string]any{"order_id": order.ID},
			wantStatus: http.StatusCreated,
		},
		{
			name: "explicitStatus",
			payload: map[string]any{
				"order_id": order.ID,
				"courier":  "Coordinadora",
				"status":   ShipmentInTransit,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "invalidStatus",
			payload: map[string]any{
				"order_id": order.ID,
				"status":   "Teleported",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknownOrder",
			payload: map[string]any{
				"order_id": uuid.New(),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missingOrderID",
			payload:    map[string]any{"status": ShipmentPending},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/shipment", tt.payload)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.name == "defaultsApplied" {
				var created Shipment
				decodeBody(t, rec, &created)
				if created.Courier != DefaultCourier {
					t.Errorf("courier = %q, want %q", created.Courier, DefaultCourier)
				}
				if created.Status != ShipmentPending {
					t.Errorf("status = %q, want %q", created.Status, ShipmentPending)
				}
			}
		})
	}
}

func TestUpdateShipment(t *testing.T) {
	t.Run("courierAndStatus", func(t *testing.T) {
		repos := newMockRepos()
		router := newTestServer(repos, nil)
		shipment := seedShipment(t, repos, ShipmentPending)

		payload := map[string]any{"courier": "Coordinadora", "status": ShipmentDelivered}
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/shipment/%s", shipment.ID), payload)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
		}

		got, _ := repos.Shipments.Get(context.Background(), shipment.ID)
		if got.Courier != "Coordinadora" || got.Status != ShipmentDelivered {
			t.Errorf("shipment = %+v", got)
		}
	})

	t.Run("invalidStatus", func(t *testing.T) {
		repos := newMockRepos()
		router := newTestServer(repos, nil)
		shipment := seedShipment(t, repos, ShipmentPending)

		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/shipment/%s", shipment.ID), map[string]any{"status": "Lost"})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		got, _ := repos.Shipments.Get(context.Background(), shipment.ID)
		if got.Status != ShipmentPending {
			t.Errorf("status = %q, a rejected update must not persist", got.Status)
		}
	})

	t.Run("publishesStatusEvent", func(t *testing.T) {
		repos := newMockRepos()
		pub := NewMockPublisher()
		router := newTestServer(repos, pub)
		shipment := seedShipment(t, repos, ShipmentPending)

		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/shipment/%s", shipment.ID), map[string]any{"status": ShipmentInTransit})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if len(pub.Published) != 1 {
			t.Errorf("published events = %d, want 1", len(pub.Published))
		}
	})

	t.Run("missingShipment", func(t *testing.T) {
		router := newTestServer(newMockRepos(), nil)
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/shipment/%s", uuid.New()), map[string]any{"status": ShipmentDelivered})
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}
