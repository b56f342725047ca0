// Package librenms implements the telemetry repository against a
// LibreNMS-compatible monitoring API.
package librenms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// callTimeout bounds every individual upstream call. No retries: a
// timeout is treated like any other failure.
const callTimeout = 20 * time.Second

// Client is a thin JSON client for the monitoring API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given API root (e.g.
// "https://nms.example.com") authenticating with X-Auth-Token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: callTimeout},
	}
}

// getCollection issues one GET and normalizes the response into a list
// of raw records. The API wraps collections inconsistently — sometimes
// {"status":"ok","devices":[…]}, sometimes {"data":[…]}, sometimes a
// bare array — so extraction tries each candidate key in order.
func (c *Client) getCollection(ctx context.Context, path string, query url.Values, keys ...string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("X-Auth-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calling %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}

	return extractCollection(body, keys...)
}

// extractCollection normaliza la respuesta: primero busca las llaves
// candidatas en el objeto envolvente, después intenta un arreglo plano.
func extractCollection(body []byte, keys ...string) ([]json.RawMessage, error) {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err == nil {
		for _, key := range keys {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, nil
			}
		}
		return nil, fmt.Errorf("no recognized collection key in response (tried %s)", strings.Join(keys, ", "))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("response is neither a wrapped nor a bare collection: %w", err)
	}
	return items, nil
}

func decodeAll[T any](raw []json.RawMessage) []T {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			// Registros malformados se descartan uno por uno, no en bloque.
			continue
		}
		out = append(out, item)
	}
	return out
}
