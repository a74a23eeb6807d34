package hydrus

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/singleflight"
)

// ClientVersion is the version of this library. The major version is the
// Client API version it speaks and the minor version is the Hydrus release it
// was written against.
const ClientVersion = "81.641.0"

var clientVersion = semver.MustParse(ClientVersion)

var (
	// SupportedAPIVersion is the only Client API version calls are allowed
	// against, unless Options.APIVersionOverride says otherwise.
	SupportedAPIVersion = int(clientVersion.Major())

	// TargetHydrusVersion is the Hydrus release this library was written
	// against. Other releases only produce a warning.
	TargetHydrusVersion = int(clientVersion.Minor())
)

const apiVersionPath = "/api_version"

type APIVersionResponse struct {
	// Version is the Client API version.
	Version int `json:"version"`

	// HydrusVersion is the Hydrus release.
	HydrusVersion int `json:"hydrus_version"`
}

// Semver renders the remote versions in the same form as ClientVersion.
func (r APIVersionResponse) Semver() *semver.Version {
	return semver.New(uint64(max(r.Version, 0)), uint64(max(r.HydrusVersion, 0)), 0, "", "")
}

// versionGate makes sure the remote version is checked once before the first
// call that needs it. Concurrent first callers share a single /api_version
// request. A version mismatch is permanent, any other failure is retried by
// the next call.
type versionGate struct {
	c        *Client
	override int
	group    singleflight.Group

	mu      sync.Mutex
	checked bool
	result  Result[APIVersionResponse]
	failed  error
}

func newVersionGate(c *Client, override int) *versionGate {
	return &versionGate{
		c:        c,
		override: override,
	}
}

// Checked reports whether the remote version has been successfully checked.
func (c *Client) Checked() bool {
	checked, _, _ := c.gate.state()
	return checked
}

func (g *versionGate) state() (bool, Result[APIVersionResponse], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.checked, g.result, g.failed
}

func (g *versionGate) ensure(ctx context.Context) (*Result[APIVersionResponse], error) {
	for {
		if checked, result, failed := g.state(); failed != nil {
			return nil, failed
		} else if checked {
			return &result, nil
		}

		ch := g.group.DoChan(apiVersionPath, func() (any, error) {
			if checked, result, failed := g.state(); checked || failed != nil {
				return result, failed
			}

			// The check outlives a caller that gives up so that the other
			// callers waiting on it still get an answer. It keeps the caller's
			// deadline.
			checkCtx := context.WithoutCancel(ctx)
			if deadline, ok := ctx.Deadline(); ok {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithDeadline(checkCtx, deadline)
				defer cancel()
			}
			return g.check(checkCtx)
		})

		select {
		case <-ctx.Done():
			return nil, &CancelledError{Path: apiVersionPath, Err: context.Cause(ctx)}
		case r := <-ch:
			var cancelled *CancelledError
			if errors.As(r.Err, &cancelled) && ctx.Err() == nil {
				// The flight ran out of another caller's time, run a new one.
				continue
			}
			if r.Err != nil {
				return nil, r.Err
			}
			result := r.Val.(Result[APIVersionResponse])
			return &result, nil
		}
	}
}

func (g *versionGate) check(ctx context.Context) (Result[APIVersionResponse], error) {
	res, err := dispatch[APIVersionResponse](ctx, g.c, Call{
		Path:     apiVersionPath,
		Method:   http.MethodGet,
		ReturnAs: ReturnJSON,
	})
	if err != nil {
		return Result[APIVersionResponse]{}, err
	}

	remote := res.Value.Semver()
	if remote.Minor() != clientVersion.Minor() {
		g.c.log.Warn().
			Int("hydrus_version", res.Value.HydrusVersion).
			Int("target_hydrus_version", TargetHydrusVersion).
			Msg("hydrus version differs from the version this client targets, some calls may not behave as documented")
	}

	if remote.Major() != clientVersion.Major() {
		if g.override == 0 || g.override != res.Value.Version {
			mismatch := &VersionMismatchError{
				Component: ComponentAPI,
				Supported: SupportedAPIVersion,
				Remote:    res.Value.Version,
			}
			g.mu.Lock()
			g.failed = mismatch
			g.mu.Unlock()
			return Result[APIVersionResponse]{}, mismatch
		}
		g.c.log.Warn().
			Int("api_version", res.Value.Version).
			Int("supported_api_version", SupportedAPIVersion).
			Msg("api version override in use, this combination is not supported")
	}

	g.mu.Lock()
	g.checked = true
	g.result = *res
	g.mu.Unlock()
	return *res, nil
}

// APIVersion gets the Client API version and Hydrus release of the remote.
// With a json interpretation the first call also runs the version check that
// every other call depends on.
func (c *Client) APIVersion(ctx context.Context, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	returnAs := pick(ReturnJSON, as)
	if returnAs == ReturnJSON && !c.Checked() {
		return c.gate.ensure(ctx)
	}
	return do[APIVersionResponse](ctx, c, Call{
		Path:     apiVersionPath,
		Method:   http.MethodGet,
		ReturnAs: returnAs,
	})
}
