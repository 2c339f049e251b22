package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jacksmith/adminui/internal/model"
)

// HTTPSource fetches a JSON (or YAML) document with a GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource returns an HTTPSource. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) String() string {
	return s.url
}

// Fetch performs the request. Non-2xx responses are load errors.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, loadError(s, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, loadError(s, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, loadError(s, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, loadError(s, fmt.Errorf("failed to read response: %w", err))
	}

	records, err := model.DecodeRecords(data, formatForResponse(resp, s.url))
	if err != nil {
		return nil, loadError(s, err)
	}
	return records, nil
}

// formatForResponse prefers the Content-Type header and falls back to the
// URL path extension.
func formatForResponse(resp *http.Response, rawURL string) model.Format {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil {
		switch mediaType {
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return model.FormatYAML
		case "application/json":
			return model.FormatJSON
		}
	}
	if resp.Request != nil && resp.Request.URL != nil {
		return model.FormatForPath(resp.Request.URL.Path)
	}
	return model.FormatForPath(rawURL)
}
