// Package fetch retrieves documents over HTTPS, one connection per request.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrBadStatusCode = errors.New("bad HTTP status code")

type Fetcher struct {
	client *http.Client
	scheme string
}

func New(client *http.Client) *Fetcher {
	return &Fetcher{
		client: client,
		scheme: "https",
	}
}

// Fetch sends a GET request to https://<host><path> and returns the
// response body if the status code is in the 2xx range.
func (f *Fetcher) Fetch(ctx context.Context, host, path string) (
	body string, err error) {
	url := f.scheme + "://" + host + path
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK ||
		response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d %s from %s",
			ErrBadStatusCode, response.StatusCode,
			http.StatusText(response.StatusCode), url)
	}

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return "", fmt.Errorf("closing response body: %w", err)
	}

	return string(b), nil
}
