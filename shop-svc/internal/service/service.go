package service

import (
	"fmt"
	"strings"
	"time"

	"alianza-shop/shop-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrValidation}, args...)...)
}

func affected(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func validateCategory(c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("category name is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		return invalid("category description is required")
	}
	return nil
}

func (s *CategoryService) Create(c *domain.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	return s.repo.CreateCategory(c)
}

func (s *CategoryService) ListVisible() ([]domain.Category, error) {
	return s.repo.ListCategories(true)
}

func (s *CategoryService) ListAll() ([]domain.Category, error) {
	return s.repo.ListCategories(false)
}

func (s *CategoryService) Get(id int) (*domain.Category, error) {
	return s.repo.GetCategory(id)
}

func (s *CategoryService) Update(c *domain.Category) error {
	if err := validateCategory(c); err != nil {
		return err
	}
	return s.repo.UpdateCategory(c)
}

func (s *CategoryService) Delete(id int) error {
	return affected(s.repo.DeleteCategory(id))
}

func (s *CategoryService) SetVisibility(id int, visible bool) error {
	return affected(s.repo.SetCategoryVisibility(id, visible))
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("product name is required")
	}
	if p.Price < 0 {
		return invalid("price must not be negative")
	}
	if p.Stock < 0 {
		return invalid("stock must not be negative")
	}
	if p.UnitType == "" {
		p.UnitType = domain.UnitKg
	}
	if !p.UnitType.Valid() {
		return invalid("unknown unit type %q", p.UnitType)
	}
	return nil
}

func (s *ProductService) Create(p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.CreateProduct(p)
}

func (s *ProductService) ListAll() ([]domain.Product, error) {
	return s.repo.ListProducts()
}

func (s *ProductService) ListByCategory(categoryID int) ([]domain.Product, error) {
	return s.repo.ListProductsByCategory(categoryID)
}

func (s *ProductService) Search(query string) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}
	return s.repo.SearchProducts(query)
}

func (s *ProductService) Get(id int) (*domain.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *ProductService) Update(p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.repo.UpdateProduct(p)
}

func (s *ProductService) Delete(id int) error {
	return affected(s.repo.DeleteProduct(id))
}

func (s *ProductService) SetVisibility(id int, visible bool) error {
	return affected(s.repo.SetProductVisibility(id, visible))
}

func (s *ProductService) UpdateStock(id int, stock float64) error {
	if stock < 0 {
		return invalid("stock must not be negative")
	}
	return affected(s.repo.UpdateStock(id, stock))
}

type OfferService struct {
	repo OfferRepository
	now  func() time.Time
}

func NewOfferService(repo OfferRepository, now func() time.Time) *OfferService {
	if now == nil {
		now = time.Now
	}
	return &OfferService{repo: repo, now: now}
}

// DiscountedPrice is original × (1 − pct/100) rounded to cents.
func DiscountedPrice(original, percentage float64) float64 {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(percentage).Div(decimal.NewFromInt(100)))
	return decimal.NewFromFloat(original).Mul(factor).Round(2).InexactFloat64()
}

func prepareOffer(o *domain.DailyOffer) error {
	if o.ProductID <= 0 {
		return invalid("product is required")
	}
	if o.DiscountPercentage <= 0 || o.DiscountPercentage >= 100 {
		return invalid("discount percentage must be between 0 and 100")
	}
	if o.OriginalPrice < 0 {
		return invalid("original price must not be negative")
	}
	if o.EndDate.Before(o.StartDate) {
		return invalid("end date is before start date")
	}
	if o.OriginalPrice > 0 {
		o.DiscountedPrice = DiscountedPrice(o.OriginalPrice, o.DiscountPercentage)
	}
	return nil
}

func (s *OfferService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Today returns the offers running today shaped as product cards.
func (s *OfferService) Today() ([]domain.OfferProduct, error) {
	offers, err := s.repo.ListActiveOffers(s.today())
	if err != nil {
		return nil, err
	}

	products := make([]domain.OfferProduct, 0, len(offers))
	for _, o := range offers {
		card := domain.OfferProduct{
			ID:                 o.ProductID,
			OfferID:            o.ID,
			Price:              o.DiscountedPrice,
			OriginalPrice:      o.OriginalPrice,
			DiscountPercentage: o.DiscountPercentage,
		}
		if o.Product != nil {
			card.CategoryID = o.Product.CategoryID
			card.Name = o.Product.Name
			card.Description = o.Product.Description
			card.Image = o.Product.Image
			card.Stock = o.Product.Stock
		}
		products = append(products, card)
	}
	return products, nil
}

// ActiveFor returns the offer running today for productID, or nil when the
// product has none.
func (s *OfferService) ActiveFor(productID int) (*domain.DailyOffer, error) {
	offers, err := s.repo.ListActiveOffers(s.today())
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].ProductID == productID && offers[i].DiscountedPrice > 0 {
			return &offers[i], nil
		}
	}
	return nil, nil
}

func (s *OfferService) List() ([]domain.DailyOffer, error) {
	return s.repo.ListOffers()
}

func (s *OfferService) Create(o *domain.DailyOffer) error {
	if err := prepareOffer(o); err != nil {
		return err
	}
	return s.repo.CreateOffer(o)
}

func (s *OfferService) Update(o *domain.DailyOffer) error {
	if err := prepareOffer(o); err != nil {
		return err
	}
	return s.repo.UpdateOffer(o)
}

func (s *OfferService) Delete(id int) error {
	return affected(s.repo.DeleteOffer(id))
}

func (s *OfferService) SetActive(id int, active bool) error {
	return affected(s.repo.SetOfferActive(id, active))
}
