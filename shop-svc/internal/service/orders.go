package service

import (
	"context"
	"strings"

	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/whatsapp"

	"go.uber.org/zap"
)

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List() ([]domain.Customer, error) {
	return s.repo.ListCustomers()
}

func (s *CustomerService) Get(id int) (*domain.Customer, error) {
	return s.repo.GetCustomer(id)
}

func (s *CustomerService) Lookup(phone string) (*domain.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, invalid("phone is required")
	}
	return s.repo.GetCustomerByPhone(phone)
}

func (s *CustomerService) Update(c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("customer name is required")
	}
	return s.repo.UpdateCustomer(c)
}

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	settings  SettingsProvider
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, qr QRGenerator, settings SettingsProvider, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, qrEncoder: qr, settings: settings, logger: logger}
}

func (s *OrderService) Get(orderID string) (*domain.Order, error) {
	return s.repo.GetOrder(orderID)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) UpdateStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return invalid("unknown order status %q", status)
	}
	return affected(s.repo.UpdateOrderStatus(orderID, status))
}

// GetQRCode returns the stored code, rendering and storing it on first access.
func (s *OrderService) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) > 0 || s.qrEncoder == nil {
		return qr, nil
	}

	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	regenerated, err := s.qrEncoder.Generate(s.ConfirmationLink(ctx, order))
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveQRCode(orderID, regenerated); err != nil {
		s.logger.Warn("failed to store regenerated QR code", zap.String("order_id", orderID), zap.Error(err))
	}
	return regenerated, nil
}

// ConfirmationLink is the WhatsApp deep link a customer sends to confirm the order.
func (s *OrderService) ConfirmationLink(ctx context.Context, order *domain.Order) string {
	number := ""
	if s.settings != nil {
		number = s.settings.Get(ctx).WhatsAppNumber
	}
	return whatsapp.Link(number, whatsapp.OrderMessage(whatsapp.OrderSummary{
		OrderID:           order.ID,
		CustomerName:      order.CustomerName,
		ClientCode:        domain.ClientCode(order.CustomerName, order.CustomerPhone),
		Total:             order.Total,
		Address:           order.Address,
		Commune:           order.Commune,
		EstimatedDelivery: order.EstimatedDelivery,
	}))
}
