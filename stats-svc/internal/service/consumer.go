package service

import (
	"context"
	"encoding/json"
	"time"

	"alianza-shop/stats-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
	Now    func() time.Time
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
		Now:    time.Now,
	}
}

// Start reads until ctx is cancelled. Malformed messages and processing
// failures are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting stats consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("Stats consumer stopped")
				return
			}
			c.Logger.Error("Error reading message", zap.Error(err))
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("Error unmarshaling message", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) {
	day := event.Timestamp
	if day.IsZero() {
		day = c.now()
	}

	switch event.Type {
	case domain.EventOrderCreated:
		c.processOrder(ctx, day, event)
	case domain.EventCouponUsed:
		if err := c.Store.RecordDiscount(ctx, day, event.DiscountAmount); err != nil {
			c.Logger.Error("Error recording discount", zap.String("order_id", event.OrderID), zap.Error(err))
		}
	}
}

func (c *Consumer) processOrder(ctx context.Context, day time.Time, event domain.Event) {
	if err := c.Store.RecordOrder(ctx, day, event.Total, event.NewCustomer); err != nil {
		c.Logger.Error("Error updating daily analytics", zap.String("order_id", event.OrderID), zap.Error(err))
		return
	}
	if err := c.Store.RecordProductSales(ctx, day, event.Items); err != nil {
		c.Logger.Error("Error updating product sales", zap.String("order_id", event.OrderID), zap.Error(err))
		return
	}
	c.Logger.Debug("Processed order", zap.String("order_id", event.OrderID), zap.Int("items", len(event.Items)))
}

func (c *Consumer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
