package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"mediation_portal/internal/config"
)

// Client signals the rendering frontend that cached pages are stale. A
// mutation calls NotifyPaths after the write commits; delivery problems are
// logged, never returned, so a dead frontend cannot fail an admin save.
type Client struct {
	url    string
	secret string
	http   *http.Client
	log    *zap.Logger
}

func NewClient(cfg config.RevalidateConfig, log *zap.Logger) *Client {
	return &Client{
		url:    cfg.URL,
		secret: cfg.Secret,
		http:   &http.Client{Timeout: 5 * time.Second},
		log:    log,
	}
}

// Enabled reports whether a revalidation hook is configured.
func (c *Client) Enabled() bool { return c.url != "" }

type payload struct {
	Paths  []string `json:"paths"`
	Secret string   `json:"secret,omitempty"`
}

// NotifyPaths posts the stale path list to the frontend hook.
func (c *Client) NotifyPaths(ctx context.Context, paths []string) {
	if !c.Enabled() || len(paths) == 0 {
		return
	}

	body, err := json.Marshal(payload{Paths: paths, Secret: c.secret})
	if err != nil {
		c.log.Warn("revalidate marshal failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.log.Warn("revalidate request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("revalidate call failed", zap.Strings("paths", paths), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("revalidate hook rejected",
			zap.Int("status", resp.StatusCode),
			zap.Strings("paths", paths))
	}
}
