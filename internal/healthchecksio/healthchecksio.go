// Package healthchecksio reports each one-shot safelist run to
// healthchecks.io, so a run that stopped happening or gathered
// nothing raises an alert there.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it reports nothing.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

// Start signals a run started, for healthchecks.io to measure its duration.
func (c *Client) Start(ctx context.Context) (err error) {
	return c.ping(ctx, "start", "")
}

// Finish reports the run outcome with a one line summary as ping body.
// A run gathering no IP address is reported as failed.
func (c *Client) Finish(ctx context.Context, region string, ipsCount int) (err error) {
	if ipsCount == 0 {
		return c.ping(ctx, "fail", "no IP address gathered for region "+region)
	}
	return c.ping(ctx, "", strconv.Itoa(ipsCount)+
		" IP address(es) gathered for region "+region)
}

var ErrPingRejected = errors.New("ping rejected")

// ping sends the summary to the check URL, suffixed with the event
// if any. An empty event signals a success.
func (c *Client) ping(ctx context.Context, event, summary string) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if event != "" {
		url += "/" + event
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url,
		strings.NewReader(summary))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Content-Type", "text/plain; charset=utf-8")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		if event == "" {
			event = "success"
		}
		return fmt.Errorf("%w: %s event got %s", ErrPingRejected, event, response.Status)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	return nil
}
