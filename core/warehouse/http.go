package warehouse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// StockPayload is the body of GET /warehouse/stock/:productId.
type StockPayload struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// UpdatePayload is the body of PUT /warehouse/stock/:productId.
type UpdatePayload struct {
	Quantity int `json:"quantity"`
}

// HTTPClient is a Client backed by the warehouse REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates an HTTPClient for cfg.BaseURL.
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeoutDuration},
	}
}

func (c *HTTPClient) stockURL(productID int) string {
	return c.baseURL + "/warehouse/stock/" + strconv.Itoa(productID)
}

// GetStock fetches the warehouse quantity of productID.
func (c *HTTPClient) GetStock(ctx context.Context, productID int) (int, error) {
	resp, err := c.do(ctx, http.MethodGet, c.stockURL(productID), nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, fmt.Errorf("%w: %d", ErrProductNotFound, productID)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, statusError(resp)
	}

	var payload StockPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode warehouse stock %d: %w", productID, err)
	}
	return payload.Quantity, nil
}

// UpdateStock sets the warehouse quantity of productID.
func (c *HTTPClient) UpdateStock(ctx context.Context, productID, quantity int) error {
	body, err := json.Marshal(UpdatePayload{Quantity: quantity})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPut, c.stockURL(productID), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Ping calls the warehouse health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build warehouse request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("warehouse %s %s: %w", method, url, err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{
		Method: resp.Request.Method,
		URL:    resp.Request.URL.String(),
		Code:   resp.StatusCode,
		Body:   strings.TrimSpace(string(body)),
	}
}
