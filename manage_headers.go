package hydrus

import "context"

// HeadersService wraps the /manage_headers endpoints.
type HeadersService service

type NetworkContext struct {
	Type int    `json:"type"`
	Data string `json:"data,omitempty"`
}

type HeaderInfo struct {
	Value string `json:"value"`

	// Approved is "approved", "denied" or "pending".
	Approved string `json:"approved"`
	Reason   string `json:"reason"`
}

type GetHeadersResponse struct {
	APIVersionResponse
	NetworkContext NetworkContext        `json:"network_context"`
	Headers        map[string]HeaderInfo `json:"headers"`
}

// HeaderEdit changes one header. A nil Value deletes the header.
type HeaderEdit struct {
	Value    *string `json:"value"`
	Approved string  `json:"approved,omitempty" validate:"omitempty,oneof=approved denied pending"`
	Reason   string  `json:"reason,omitempty"`
}

// SetHeadersOptions edits the headers Hydrus sends. An empty Domain edits the
// global headers.
type SetHeadersOptions struct {
	Domain  string                `json:"domain,omitempty"`
	Headers map[string]HeaderEdit `json:"headers" validate:"required,dive"`
}

// GetHeaders gets the custom headers Hydrus sends to a domain. An empty domain
// gets the global headers.
func (s *HeadersService) GetHeaders(ctx context.Context, domain string, as ...ReturnAs) (*Result[GetHeadersResponse], error) {
	return get[GetHeadersResponse](ctx, s.c, "/manage_headers/get_headers", struct {
		Domain string `json:"domain,omitempty"`
	}{Domain: domain}, ReturnJSON, as)
}

func (s *HeadersService) SetHeaders(ctx context.Context, opts SetHeadersOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_headers/set_headers", opts, ReturnSuccess, as)
}
