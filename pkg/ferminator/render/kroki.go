// Package render transports diagram text to a remote rendering service.
package render

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultServer is the public Kroki rendering endpoint.
const DefaultServer = "https://kroki.io"

const diagramType = "mermaid"

// Client fetches rendered diagram images from a Kroki-compatible server.
type Client struct {
	server     string
	httpClient *http.Client
}

// NewClient creates a rendering client; an empty server selects the public
// endpoint.
func NewClient(server string) *Client {
	if server == "" {
		server = DefaultServer
	}
	return &Client{
		server: strings.TrimRight(server, "/"),
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
	}
}

// EncodeDiagram compresses diagram text and encodes it for use as a URL
// path segment, the transport the rendering service expects.
func EncodeDiagram(text string) string {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return ""
	}
	_, _ = w.Write([]byte(text))
	_ = w.Close()
	return base64.URLEncoding.EncodeToString(buf.Bytes())
}

// URL builds the rendering URL for a diagram in the given image format
// (e.g. "svg", "png").
func (c *Client) URL(format, diagram string) string {
	return c.server + "/" + diagramType + "/" + format + "/" + EncodeDiagram(diagram)
}

// Render fetches the rendered image.
func (c *Client) Render(ctx context.Context, format, diagram string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(format, diagram), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected render response status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
