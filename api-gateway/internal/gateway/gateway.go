package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"alianza-shop/api-gateway/internal/navigation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	ShopSvcURL      string
	CouponSvcURL    string
	AnalyticsSvcURL string
	FrontendDir     string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	})
}

// hasSegmentPrefix matches prefix itself or prefix followed by a path segment.
func hasSegmentPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Upstream picks the service that owns path.
func (g *Gateway) Upstream(path string) string {
	switch {
	case hasSegmentPrefix(path, "/api/coupons"), hasSegmentPrefix(path, "/api/admin/coupons"):
		return g.config.CouponSvcURL
	case hasSegmentPrefix(path, "/api/admin/analytics"):
		return g.config.AnalyticsSvcURL
	default:
		return g.config.ShopSvcURL
	}
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("Failed to create upstream request", zap.String("url", url), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal error, please retry"})
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("Upstream request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("upstream", targetURL),
			zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Servicio no disponible, intenta nuevamente"})
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("Failed to copy upstream response", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

// internalPaths are service-to-service endpoints the gateway never exposes.
var internalPaths = []string{"/api/coupons/use"}

func isInternal(path string) bool {
	for _, p := range internalPaths {
		if hasSegmentPrefix(path, p) {
			return true
		}
	}
	return false
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if isInternal(r.URL.Path) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}
	g.ProxyRequest(w, r, g.Upstream(r.URL.Path))
}

type resolveResponse struct {
	navigation.Route
	URL string `json:"url"`
}

// Resolve answers GET /api/navigation/resolve?url=.
func (g *Gateway) Resolve(w http.ResponseWriter, r *http.Request) {
	route := navigation.Resolve(r.URL.Query().Get("url"))
	writeJSON(w, http.StatusOK, resolveResponse{Route: route, URL: route.URL()})
}

// Shell serves index.html for every client-side URL. Unknown paths still get
// the shell; the resolved view is home.
func (g *Gateway) Shell(w http.ResponseWriter, r *http.Request) {
	route := navigation.Resolve(r.URL.RequestURI())
	w.Header().Set("X-View", string(route.View))
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, "index.html"))
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/api/navigation/resolve", g.Resolve).Methods("GET")
	r.HandleFunc("/api/storefront/home", g.StorefrontHome).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/uploads/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(g.config.FrontendDir))))
	r.PathPrefix("/").HandlerFunc(g.Shell).Methods("GET", "HEAD")
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
