// Package apiclient posts generated entities to the ingestion API, one JSON
// record per request, mirroring what the mock service accepts. Transport
// errors and non-2xx responses propagate to the caller unmodified; retry
// policy belongs to the transport, not here.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
)

const maxErrorBodyBytes = 512

// Client posts rows to an ingestion API base URL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// ProgressOut receives the progress bar; defaults to stderr.
	ProgressOut io.Writer
}

// New returns a Client with a 5 second request timeout, matching the
// ingestion contract's expectation of a fast local mock.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// PostRows sends each row as its own POST to path, in order, with a progress
// bar. It stops at the first failure and reports the HTTP status and
// response body of the rejected row.
func (c *Client) PostRows(ctx context.Context, path string, rows []any) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	url := c.BaseURL + path

	out := c.ProgressOut
	if out == nil {
		out = os.Stderr
	}
	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("POST "+path),
		progressbar.OptionShowCount(),
	)

	for i, row := range rows {
		if err := c.postOne(ctx, url, row); err != nil {
			return fmt.Errorf("row %d of %d: %w", i+1, len(rows), err)
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Fprintln(out)
	return nil
}

func (c *Client) postOne(ctx context.Context, url string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("POST %s: %s: %s", url, resp.Status, strings.TrimSpace(string(snippet)))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
