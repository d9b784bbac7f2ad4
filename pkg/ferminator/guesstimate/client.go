// Package guesstimate is the client boundary to the external modeling
// service: the computation graph is embedded in a space-update payload and
// sent with an authenticated PATCH.
package guesstimate

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/bytedance/sonic"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

// DefaultBaseURL is the public API endpoint of the modeling service.
const DefaultBaseURL = "https://guesstimate.herokuapp.com"

// Client sends computation graphs to the modeling service.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a client. The token comes from the caller's locally
// held credentials; an empty baseURL selects the public endpoint.
func NewClient(baseURL, apiToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: time.Second * 15,
		},
	}
}

type spaceUpdate struct {
	Space spaceBody `json:"space"`
}

type spaceBody struct {
	Graph *models.Graph `json:"graph"`
}

// UpdateSpace replaces the graph of an existing space.
func (c *Client) UpdateSpace(ctx context.Context, spaceID int, graph *models.Graph) error {
	payload, err := json.Marshal(spaceUpdate{Space: spaceBody{Graph: graph}})
	if err != nil {
		return err
	}

	url := c.baseURL + "/spaces/" + strconv.Itoa(spaceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected space update response status: %s", resp.Status)
	}
	return nil
}
