package store

import (
	"context"
	"fmt"

	"github.com/shoestackclub/shoestack/internal/cache"
	"github.com/shoestackclub/shoestack/internal/events"
	"github.com/shoestackclub/shoestack/internal/logging"
	"github.com/shoestackclub/shoestack/pkg/event"
)

// queryCacheKeys is every key the query service stores; lifecycle
// events invalidate all of them since most queries join across orders,
// shipments, and stock.
var queryCacheKeys = []string{
	"query:products-suppliers",
	"query:orders-status",
	"query:suppliers-stock",
	"query:orders-by-customer",
	"query:sales-by-product",
	"query:low-stock",
	"query:orders-by-month",
}

// QueryCacheInvalidator drops cached query results whenever an order or
// shipment lifecycle event arrives, so reports catch up within one
// request instead of a full TTL.
type QueryCacheInvalidator struct {
	subscriber events.Subscriber
	cache      *cache.Cache
	logger     logging.Logger
}

func NewQueryCacheInvalidator(sub events.Subscriber, c *cache.Cache, logger logging.Logger) *QueryCacheInvalidator {
	if logger == nil {
		logger = logging.NewNoopLogger()
	}
	return &QueryCacheInvalidator{
		subscriber: sub,
		cache:      c,
		logger:     logger,
	}
}

func (s *QueryCacheInvalidator) Start(ctx context.Context) error {
	if s.subscriber == nil {
		return fmt.Errorf("query cache invalidator not configured")
	}
	s.logger.Info("starting query cache invalidator",
		"topics", event.OrdersLifecycleTopic+","+event.ShipmentsStatusTopic)

	if err := s.subscriber.Subscribe(ctx, event.OrdersLifecycleTopic, s.handleEvent); err != nil {
		return fmt.Errorf("cannot subscribe to %s: %w", event.OrdersLifecycleTopic, err)
	}
	if err := s.subscriber.Subscribe(ctx, event.ShipmentsStatusTopic, s.handleEvent); err != nil {
		return fmt.Errorf("cannot subscribe to %s: %w", event.ShipmentsStatusTopic, err)
	}
	return nil
}

func (s *QueryCacheInvalidator) handleEvent(ctx context.Context, msg []byte) error {
	s.cache.Delete(ctx, queryCacheKeys...)
	s.logger.Debug("query caches invalidated", "payload_bytes", len(msg))
	return nil
}
