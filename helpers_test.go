package hydrus

import (
	"testing"

	"github.com/anitschke/go-hydrus/internal/fakehydrus"
	"github.com/stretchr/testify/require"
)

const (
	testAccessKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testHash      = "ad6d3599a6c489a575eb19c026face97a9cd6579e74728b0ce94a601d232f3c3"
)

// newTestServer starts a fake Hydrus that reports the versions this library
// supports, and a client talking to it.
func newTestServer(t *testing.T, opts ...func(*Options)) (*Client, *fakehydrus.Server) {
	t.Helper()
	server := fakehydrus.New(t, SupportedAPIVersion, TargetHydrusVersion)

	options := Options{
		Address:   server.URL,
		AccessKey: testAccessKey,
	}
	for _, o := range opts {
		o(&options)
	}

	client, err := NewClient(options)
	require.NoError(t, err)
	return client, server
}

// requestsTo drops the /api_version requests from the ones the server saw.
func requestsTo(server *fakehydrus.Server, path string) []fakehydrus.Request {
	var out []fakehydrus.Request
	for _, r := range server.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}
