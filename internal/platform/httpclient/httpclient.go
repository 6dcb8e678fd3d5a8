package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxFetchBytes limita la descarga del Excel (el padrón real pesa
	// unos pocos cientos de KB).
	maxFetchBytes = 16 << 20
)

// Client envuelve *http.Client con los dos helpers que necesitan los
// adapters: bajar bytes (Excel remoto) y sondear existencia (HEAD).
type Client struct {
	HTTP *http.Client
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	c := New(timeout)
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c
}

// FetchBytes hace GET y devuelve el body completo.
// Retorna error si el status no es 2xx.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if c == nil || c.HTTP == nil {
		return nil, errors.New("httpclient: nil client")
	}
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("httpclient: empty url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("httpclient: unexpected status %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
}

// Head hace un HEAD y devuelve el status code. El caller decide qué
// rangos considera "existe"; acá solo se reporta transporte vs status.
func (c *Client) Head(ctx context.Context, url string) (int, error) {
	if c == nil || c.HTTP == nil {
		return 0, errors.New("httpclient: nil client")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, fmt.Errorf("httpclient: new request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	// HEAD no trae body, pero igual hay que cerrarlo.
	_ = resp.Body.Close()

	return resp.StatusCode, nil
}
