package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alianza-shop/auth"
)

const (
	serviceSubject  = "shop-svc"
	serviceTokenTTL = time.Minute
)

// HTTPCouponClient calls the coupon service's validate and use procedures.
// Usage reports carry a short-lived service token.
type HTTPCouponClient struct {
	BaseURL string
	Client  *http.Client
	Tokens  TokenSigner
}

func NewHTTPCouponClient(baseURL string, tokens TokenSigner) *HTTPCouponClient {
	return &HTTPCouponClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Second},
		Tokens:  tokens,
	}
}

func (c *HTTPCouponClient) Validate(ctx context.Context, code string, orderTotal float64) (*CouponResult, error) {
	body := map[string]interface{}{"code": code, "order_total": orderTotal}
	var result CouponResult
	if err := c.post(ctx, "/api/coupons/validate", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPCouponClient) Use(ctx context.Context, usage CouponUsage) error {
	if c.Tokens == nil {
		return fmt.Errorf("coupon service /api/coupons/use: no service credentials")
	}
	token, _, err := c.Tokens.IssueFor(auth.RoleService, serviceSubject, serviceTokenTTL)
	if err != nil {
		return fmt.Errorf("sign service token: %w", err)
	}
	return c.post(ctx, "/api/coupons/use", token, usage, nil)
}

func (c *HTTPCouponClient) post(ctx context.Context, path, token string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("coupon service %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("coupon service %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
