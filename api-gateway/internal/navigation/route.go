// Package navigation maps storefront URLs to top-level views and keeps a
// browser-style history of the routes visited.
//
// The gateway is stateless and only uses Resolve, for the shell's X-View
// header and the resolve endpoint. History is the client-side state a shell
// keeps per browser tab; the gateway never holds one.
package navigation

import (
	"net/url"
	"strconv"
	"strings"
)

type View string

const (
	ViewHome           View = "home"
	ViewCategoryDetail View = "category-detail"
	ViewCart           View = "cart"
	ViewCheckout       View = "checkout"
	ViewAdminLogin     View = "admin-login"
	ViewAdminDashboard View = "admin-dashboard"
)

// Screen is a sub-view of the admin dashboard, addressed by ?view=.
type Screen string

const (
	ScreenCategories    Screen = "categories"
	ScreenProducts      Screen = "products"
	ScreenInventory     Screen = "inventory"
	ScreenCustomers     Screen = "customers"
	ScreenOrders        Screen = "orders"
	ScreenDelivery      Screen = "delivery"
	ScreenLocations     Screen = "locations"
	ScreenOffers        Screen = "offers"
	ScreenCoupons       Screen = "coupons"
	ScreenConfiguration Screen = "configuration"
	ScreenAnalytics     Screen = "analytics"

	DefaultScreen = ScreenAnalytics
)

var screens = map[Screen]bool{
	ScreenCategories:    true,
	ScreenProducts:      true,
	ScreenInventory:     true,
	ScreenCustomers:     true,
	ScreenOrders:        true,
	ScreenDelivery:      true,
	ScreenLocations:     true,
	ScreenOffers:        true,
	ScreenCoupons:       true,
	ScreenConfiguration: true,
	ScreenAnalytics:     true,
}

func (s Screen) Valid() bool {
	return screens[s]
}

// Route is the resolved state of the shell. CategoryID is set only for
// category-detail, Screen only for admin-dashboard.
type Route struct {
	View       View   `json:"view"`
	CategoryID int    `json:"category_id,omitempty"`
	Screen     Screen `json:"screen,omitempty"`
}

var Home = Route{View: ViewHome}

// Category builds the category-detail route; a non-positive id yields Home.
func Category(id int) Route {
	if id <= 0 {
		return Home
	}
	return Route{View: ViewCategoryDetail, CategoryID: id}
}

// Admin builds the dashboard route; unknown screens fall back to DefaultScreen.
func Admin(screen Screen) Route {
	if !screen.Valid() {
		screen = DefaultScreen
	}
	return Route{View: ViewAdminDashboard, Screen: screen}
}

type resolver func(query url.Values) Route

var table = map[string]resolver{
	"/":            func(url.Values) Route { return Home },
	"/cart":        func(url.Values) Route { return Route{View: ViewCart} },
	"/checkout":    func(url.Values) Route { return Route{View: ViewCheckout} },
	"/admin-login": func(url.Values) Route { return Route{View: ViewAdminLogin} },
	"/admin":       func(q url.Values) Route { return Admin(Screen(q.Get("view"))) },
	"/category": func(q url.Values) Route {
		id, err := strconv.Atoi(q.Get("id"))
		if err != nil {
			return Home
		}
		return Category(id)
	},
}

// Resolve accepts an absolute URL or a path with query string. It never
// fails: anything it does not recognise resolves to Home.
func Resolve(raw string) Route {
	u, err := url.Parse(raw)
	if err != nil {
		return Home
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	resolve, ok := table[path]
	if !ok {
		return Home
	}
	return resolve(u.Query())
}

// URL renders the route in the form Resolve reads back.
func (r Route) URL() string {
	switch r.View {
	case ViewCategoryDetail:
		if r.CategoryID <= 0 {
			return "/"
		}
		return "/category?id=" + strconv.Itoa(r.CategoryID)
	case ViewCart:
		return "/cart"
	case ViewCheckout:
		return "/checkout"
	case ViewAdminLogin:
		return "/admin-login"
	case ViewAdminDashboard:
		screen := r.Screen
		if !screen.Valid() {
			screen = DefaultScreen
		}
		return "/admin?" + url.Values{"view": {string(screen)}}.Encode()
	default:
		return "/"
	}
}
