package provider

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arhansuba/tg-trading-bot/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const (
	requestTimeout = 30 * time.Second
	tokenLifetime  = 2 * time.Minute
)

// Client is the trading-provider REST gateway. Every request carries a
// short-lived ES256 JWT built from the configured API key pair.
type Client struct {
	http    *http.Client
	baseURL string
	keyName string
	signKey *ecdsa.PrivateKey
	network string
	log     zerolog.Logger
}

// NewClient creates a provider client. An unparsable EC private key fails
// here, before any inbound message is accepted.
func NewClient(cfg config.ProviderConfig, log zerolog.Logger) (*Client, error) {
	signKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(cfg.PrivateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parsing provider private key: %w", err)
	}
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: cfg.BaseURL,
		keyName: cfg.KeyName,
		signKey: signKey,
		network: cfg.Network,
		log:     log,
	}, nil
}

// Network returns the network wallets are provisioned on.
func (c *Client) Network() string {
	return c.network
}

// do executes one authenticated request, decoding the JSON response into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	token, err := c.bearerToken(method, path)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// bearerToken builds the per-request ES256 JWT. The token is scoped to a
// single method+path and expires quickly, so a leaked token is of little use.
func (c *Client) bearerToken(method, path string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  c.keyName,
		"iss":  "cdp",
		"nbf":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
		"uris": []string{fmt.Sprintf("%s %s", method, path)},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = c.keyName
	return token.SignedString(c.signKey)
}
