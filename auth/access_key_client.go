package auth

import (
	"net/http"

	"github.com/anitschke/go-hydrus/httpx"
)

const (
	// AccessKeyHeader carries the 64 character hex access key granted through
	// /request_new_permissions.
	AccessKeyHeader = "Hydrus-Client-API-Access-Key"

	// SessionKeyHeader carries a temporary session key obtained from
	// /session_key. A request that already carries one is left alone.
	SessionKeyHeader = "Hydrus-Client-API-Session-Key"
)

// AccessKeyClient is a httpx.Client that adds the Hydrus access key header to
// every request that does not already carry credentials.
type AccessKeyClient struct {
	client    httpx.Client
	accessKey string
}

var _ = (httpx.Client)((*AccessKeyClient)(nil))

func NewAccessKeyClient(client httpx.Client, accessKey string) *AccessKeyClient {
	return &AccessKeyClient{
		client:    client,
		accessKey: accessKey,
	}
}

func (c *AccessKeyClient) Do(req *http.Request) (*http.Response, error) {
	if c.accessKey != "" && !HasCredentials(req.Header) {
		req.Header.Set(AccessKeyHeader, c.accessKey)
	}
	return c.client.Do(req)
}

// HasCredentials reports whether the header already has an access or session
// key set.
func HasCredentials(h http.Header) bool {
	return h.Get(AccessKeyHeader) != "" || h.Get(SessionKeyHeader) != ""
}
