package service

import (
	"context"
	"time"

	"alianza-shop/stats-svc/internal/domain"
	"alianza-shop/stats-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, day time.Time, total float64, newCustomer bool) error
	RecordDiscount(ctx context.Context, day time.Time, amount float64) error
	RecordProductSales(ctx context.Context, day time.Time, items []domain.Item) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
