package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"alianza-shop/stats-svc/internal/domain"
	"alianza-shop/stats-svc/internal/mocks"
	"alianza-shop/stats-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

var orderTime = time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

func orderEvent() domain.Event {
	return domain.Event{
		Type:        domain.EventOrderCreated,
		OrderID:     "KT-20240315-1430-AB12",
		Total:       21000,
		NewCustomer: true,
		Items: []domain.Item{
			{ProductID: 1, ProductName: "Lomo Vetado", Quantity: 1.5, Price: 12000},
		},
		Timestamp: orderTime,
	}
}

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.Event
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:  "order_created",
			event: orderEvent(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, orderTime, 21000.0, true).Return(nil).Once()
				mockStore.On("RecordProductSales", mock.Anything, orderTime, orderEvent().Items).Return(nil).Once()
			},
		},
		{
			name:  "order_created_daily_row_error_skips_leaderboard",
			event: orderEvent(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, orderTime, 21000.0, true).
					Return(errors.New("db connection failed")).Once()
			},
		},
		{
			name:  "order_created_redis_error",
			event: orderEvent(),
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, orderTime, 21000.0, true).Return(nil).Once()
				mockStore.On("RecordProductSales", mock.Anything, orderTime, mock.Anything).
					Return(errors.New("redis error")).Once()
			},
		},
		{
			name: "coupon_used",
			event: domain.Event{
				Type:           domain.EventCouponUsed,
				OrderID:        "KT-1",
				Code:           "AHORRA",
				DiscountAmount: 2000,
				Timestamp:      orderTime,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordDiscount", mock.Anything, orderTime, 2000.0).Return(nil).Once()
			},
		},
		{
			name:           "unknown_type_ignored",
			event:          domain.Event{Type: "new_review"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, nil)
			consumer.Process(context.Background(), testCase.event)
		})
	}
}

func TestConsumer_MissingTimestampUsesClock(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	consumer := service.NewConsumer(nil, mockStore, nil)
	consumer.Now = func() time.Time { return now }

	mockStore.On("RecordDiscount", mock.Anything, now, 500.0).Return(nil).Once()

	consumer.Process(context.Background(), domain.Event{Type: domain.EventCouponUsed, DiscountAmount: 500})
}

func TestConsumer_StartSkipsBadMessagesUntilCancelled(t *testing.T) {
	mockReader := mocks.NewMessageReader(t)
	mockStore := mocks.NewStoreInterface(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid := []byte(`{"type":"order_created","order_id":"KT-1","total":5000,"items":[],"timestamp":"2024-03-15T14:30:00Z"}`)

	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("{garbage")}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker unavailable")).Once()
	mockReader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: valid}, nil).Once()
	mockReader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	mockStore.On("RecordOrder", mock.Anything, orderTime, 5000.0, false).Return(nil).Once()
	mockStore.On("RecordProductSales", mock.Anything, orderTime, []domain.Item{}).Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(mockReader, mockStore, nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
