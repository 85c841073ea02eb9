package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shoestackclub/shoestack/internal/events"
	"github.com/shoestackclub/shoestack/pkg/event"
)

func TestQueryCacheInvalidatorStart(t *testing.T) {
	t.Run("subscribesToBothTopics", func(t *testing.T) {
		var topics []string
		sub := NewMockSubscriber()
		sub.SubscribeFunc = func(ctx context.Context, topic string, handler events.HandlerFunc) error {
			topics = append(topics, topic)
			return nil
		}

		inv := NewQueryCacheInvalidator(sub, nil, nil)
		if err := inv.Start(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(topics) != 2 {
			t.Fatalf("subscriptions = %d, want 2", len(topics))
		}
		if topics[0] != event.OrdersLifecycleTopic || topics[1] != event.ShipmentsStatusTopic {
			t.Errorf("topics = %v", topics)
		}
	})

	t.Run("nilSubscriber", func(t *testing.T) {
		inv := NewQueryCacheInvalidator(nil, nil, nil)
		if err := inv.Start(context.Background()); err == nil {
			t.Error("expected error when no subscriber is configured")
		}
	})

	t.Run("subscribeFailure", func(t *testing.T) {
		sub := NewMockSubscriber()
		sub.SubscribeFunc = func(ctx context.Context, topic string, handler events.HandlerFunc) error {
			return errors.New("nats unavailable")
		}
		inv := NewQueryCacheInvalidator(sub, nil, nil)
		if err := inv.Start(context.Background()); err == nil {
			t.Error("expected subscribe error to propagate")
		}
	})
}

func TestQueryCacheInvalidatorHandleEvent(t *testing.T) {
	// A nil cache is a no-op; the handler must still accept the event.
	var captured events.HandlerFunc
	sub := NewMockSubscriber()
	sub.SubscribeFunc = func(ctx context.Context, topic string, handler events.HandlerFunc) error {
		captured = handler
		return nil
	}

	inv := NewQueryCacheInvalidator(sub, nil, nil)
	if err := inv.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured == nil {
		t.Fatal("handler was not registered")
	}
	if err := captured(context.Background(), []byte(`{"type":"order.created"}`)); err != nil {
		t.Errorf("handler returned error: %v", err)
	}
}
