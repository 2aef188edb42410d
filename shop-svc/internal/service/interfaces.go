package service

import (
	"context"
	"time"

	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/checkout"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/settings"
)

type CategoryRepository interface {
	CreateCategory(c *domain.Category) error
	ListCategories(visibleOnly bool) ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	UpdateCategory(c *domain.Category) error
	DeleteCategory(id int) (int64, error)
	SetCategoryVisibility(id int, visible bool) (int64, error)
}

type ProductRepository interface {
	ListProducts() ([]domain.Product, error)
	ListProductsByCategory(categoryID int) ([]domain.Product, error)
	SearchProducts(query string) ([]domain.Product, error)
	GetProduct(id int) (*domain.Product, error)
	CreateProduct(p *domain.Product) error
	UpdateProduct(p *domain.Product) error
	DeleteProduct(id int) (int64, error)
	SetProductVisibility(id int, visible bool) (int64, error)
	UpdateStock(id int, stock float64) (int64, error)
}

type OfferRepository interface {
	ListActiveOffers(day time.Time) ([]domain.DailyOffer, error)
	ListOffers() ([]domain.DailyOffer, error)
	GetOffer(id int) (*domain.DailyOffer, error)
	CreateOffer(o *domain.DailyOffer) error
	UpdateOffer(o *domain.DailyOffer) error
	DeleteOffer(id int) (int64, error)
	SetOfferActive(id int, active bool) (int64, error)
}

type CustomerRepository interface {
	ListCustomers() ([]domain.Customer, error)
	GetCustomer(id int) (*domain.Customer, error)
	GetCustomerByPhone(phone string) (*domain.Customer, error)
	CreateCustomer(c *domain.Customer) error
	UpdateCustomer(c *domain.Customer) error
}

type OrderRepository interface {
	GetOrder(orderID string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(orderID string, status domain.OrderStatus) (int64, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type ZoneRepository interface {
	ListZones(activeOnly bool) ([]domain.DeliveryZone, error)
	CreateZone(z *domain.DeliveryZone) error
	UpdateZone(z *domain.DeliveryZone) (int64, error)
	SetZoneActive(id int, active bool) (int64, error)
}

type LocationRepository interface {
	ListLocations(activeOnly bool) ([]domain.StoreLocation, error)
	GetLocation(id int) (*domain.StoreLocation, error)
	CreateLocation(l *domain.StoreLocation) error
	UpdateLocation(l *domain.StoreLocation) error
	DeleteLocation(id int) (int64, error)
	SetLocationActive(id int, active bool) (int64, error)
}

type ConfigRepository interface {
	ListConfigurations() ([]domain.ConfigEntry, error)
	UpsertConfiguration(e *domain.ConfigEntry) error
	DeleteConfiguration(key string) (int64, error)
}

type AdminRepository interface {
	GetAdminByUsername(username string) (*domain.AdminUser, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) settings.StoreSettings
	Invalidate(ctx context.Context)
}

type TokenIssuer interface {
	Issue(username string) (string, time.Time, error)
}

type CategoryServiceInterface interface {
	Create(c *domain.Category) error
	ListVisible() ([]domain.Category, error)
	ListAll() ([]domain.Category, error)
	Get(id int) (*domain.Category, error)
	Update(c *domain.Category) error
	Delete(id int) error
	SetVisibility(id int, visible bool) error
}

type ProductServiceInterface interface {
	Create(p *domain.Product) error
	ListAll() ([]domain.Product, error)
	ListByCategory(categoryID int) ([]domain.Product, error)
	Search(query string) ([]domain.Product, error)
	Get(id int) (*domain.Product, error)
	Update(p *domain.Product) error
	Delete(id int) error
	SetVisibility(id int, visible bool) error
	UpdateStock(id int, stock float64) error
}

type OfferServiceInterface interface {
	Today() ([]domain.OfferProduct, error)
	ActiveFor(productID int) (*domain.DailyOffer, error)
	List() ([]domain.DailyOffer, error)
	Create(o *domain.DailyOffer) error
	Update(o *domain.DailyOffer) error
	Delete(id int) error
	SetActive(id int, active bool) error
}

type CustomerServiceInterface interface {
	List() ([]domain.Customer, error)
	Get(id int) (*domain.Customer, error)
	Lookup(phone string) (*domain.Customer, error)
	Update(c *domain.Customer) error
}

type OrderServiceInterface interface {
	Get(orderID string) (*domain.Order, error)
	List() ([]domain.Order, error)
	UpdateStatus(orderID string, status domain.OrderStatus) error
	GetQRCode(ctx context.Context, orderID string) ([]byte, error)
}

type ZoneServiceInterface interface {
	ListActive() ([]domain.DeliveryZone, error)
	ListAll() ([]domain.DeliveryZone, error)
	Create(z *domain.DeliveryZone) error
	Update(z *domain.DeliveryZone) error
	SetActive(id int, active bool) error
}

type LocationServiceInterface interface {
	ListActive() ([]domain.StoreLocation, error)
	ListAll() ([]domain.StoreLocation, error)
	Create(l *domain.StoreLocation) error
	Update(l *domain.StoreLocation) error
	Delete(id int) error
	SetActive(id int, active bool) error
}

type ConfigServiceInterface interface {
	List() ([]domain.ConfigEntry, error)
	Upsert(ctx context.Context, e *domain.ConfigEntry) error
	Delete(ctx context.Context, key string) error
	Settings(ctx context.Context) settings.StoreSettings
}

type AuthServiceInterface interface {
	Login(username, password string) (*LoginResult, error)
}

// CheckoutServiceInterface covers the session cart and the order submission flow.
type CheckoutServiceInterface interface {
	Cart(ctx context.Context, sessionID string) (*cart.Cart, error)
	AddItem(ctx context.Context, sessionID string, product *domain.Product, quantity float64) (*cart.Cart, error)
	SetQuantity(ctx context.Context, sessionID string, productID int, quantity float64) (*cart.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*cart.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
	Quote(ctx context.Context, sessionID, commune, couponCode string) (*checkout.Quote, error)
	ApplyCoupon(ctx context.Context, code string, subtotal float64) (*checkout.CouponResult, error)
	Submit(ctx context.Context, sessionID string, form checkout.Form) (*checkout.Confirmation, error)
}

var (
	_ CategoryServiceInterface = (*CategoryService)(nil)
	_ ProductServiceInterface  = (*ProductService)(nil)
	_ OfferServiceInterface    = (*OfferService)(nil)
	_ CustomerServiceInterface = (*CustomerService)(nil)
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ ZoneServiceInterface     = (*ZoneService)(nil)
	_ LocationServiceInterface = (*LocationService)(nil)
	_ ConfigServiceInterface   = (*ConfigService)(nil)
	_ AuthServiceInterface     = (*AuthService)(nil)
	_ CheckoutServiceInterface = (*checkout.Service)(nil)
)
