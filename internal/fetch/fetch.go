package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"time"

	"github.com/go-resty/resty/v2"

	"phonedrop/internal/config"
)

// Result is the outcome of downloading one remote URL item.
type Result struct {
	Content     []byte
	Name        string // best-effort filename from Content-Disposition or the URL path
	ContentType string
}

// Client downloads remote URL items with a bounded per-item timeout so one
// slow remote cannot stall the rest of a batch.
type Client struct {
	http    *resty.Client
	maxSize int64
}

// New builds a fetch client from config. Responses are consumed as raw
// streams so the size cap applies while reading, not after buffering.
func New(cfg config.FetchConfig) *Client {
	c := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5)).
		SetDoNotParseResponse(true)
	return &Client{
		http:    c,
		maxSize: int64(cfg.MaxSizeMB) << 20,
	}
}

// Fetch downloads the content behind rawURL. Only http and https URLs are
// accepted.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	resp, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	raw := resp.RawBody()
	defer raw.Close()
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: remote returned %s", rawURL, resp.Status())
	}

	// Read through a limited reader so an oversized response is cut off
	// mid-stream instead of buffered in full first.
	r := io.Reader(raw)
	if c.maxSize > 0 {
		r = io.LimitReader(raw, c.maxSize+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	if c.maxSize > 0 && int64(len(body)) > c.maxSize {
		return nil, fmt.Errorf("fetch %s: response exceeds %d bytes", rawURL, c.maxSize)
	}

	return &Result{
		Content:     body,
		Name:        filename(resp.Header().Get("Content-Disposition"), u),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}

// filename picks a name for the downloaded content: the Content-Disposition
// filename when the remote supplies one, otherwise the last URL path
// segment. May return "" when neither yields anything usable; the caller
// synthesizes a name in that case.
func filename(disposition string, u *url.URL) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." {
		return ""
	}
	return base
}
