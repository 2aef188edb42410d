package domain

type DailyAnalytics struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	NewCustomers  int     `json:"new_customers"`
	TotalDiscount float64 `json:"total_discount"`
}

// ProductSales ranks a product by quantity sold; Revenue is quantity times unit price.
type ProductSales struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Sales     float64 `json:"sales"`
	Revenue   float64 `json:"revenue"`
}

type InventoryAlert struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Stock    float64 `json:"stock"`
	UnitType string  `json:"unit_type"`
}

type FrequentCustomer struct {
	CustomerID int     `json:"customer_id"`
	Name       string  `json:"name"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
}

type CategorySales struct {
	CategoryID int     `json:"category_id"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

type Summary struct {
	Days          int     `json:"days"`
	TotalSales    float64 `json:"total_sales"`
	TotalOrders   int     `json:"total_orders"`
	NewCustomers  int     `json:"new_customers"`
	TotalDiscount float64 `json:"total_discount"`
	AverageTicket float64 `json:"average_ticket"`
}
