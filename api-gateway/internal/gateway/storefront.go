package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Section is one independently loaded part of the storefront home. When the
// upstream call fails Data holds the fallback and Error the message shown in
// place of the section.
type Section struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

type homeSection struct {
	name     string
	path     string
	fallback string
	message  string
}

var homeSections = []homeSection{
	{"categories", "/api/categories", "[]", "No se pudieron cargar las categorías"},
	{"offers", "/api/offers", "[]", "No se pudieron cargar las ofertas del día"},
	{"settings", "/api/settings", "{}", "No se pudo cargar la información de la tienda"},
	{"locations", "/api/locations", "[]", "No se pudieron cargar nuestros locales"},
}

// Home loads every section concurrently. A failing section never affects
// the others.
func (g *Gateway) Home(ctx context.Context) map[string]Section {
	results := make([]Section, len(homeSections))

	var wg sync.WaitGroup
	for i, s := range homeSections {
		wg.Add(1)
		go func(i int, s homeSection) {
			defer wg.Done()
			data, err := g.fetch(ctx, s.path)
			if err != nil {
				g.logger.Warn("Storefront section unavailable", zap.String("section", s.name), zap.Error(err))
				results[i] = Section{Data: json.RawMessage(s.fallback), Error: s.message}
				return
			}
			results[i] = Section{Data: data}
		}(i, s)
	}
	wg.Wait()

	home := make(map[string]Section, len(homeSections))
	for i, s := range homeSections {
		home[s.name] = results[i]
	}
	return home
}

func (g *Gateway) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.config.ShopSvcURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: invalid JSON body", path)
	}
	return json.RawMessage(body), nil
}

func (g *Gateway) StorefrontHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, g.Home(r.Context()))
}
