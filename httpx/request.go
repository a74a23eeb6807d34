package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// NewRequest creates a request with a copy of the provided headers.
func NewRequest(ctx context.Context, method, endpoint string, header http.Header, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}
