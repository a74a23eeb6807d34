package hydrus

import (
	"context"
	"net/http"

	"github.com/anitschke/go-hydrus/httpx"
)

// pick returns the first interpretation the caller asked for, or def.
func pick(def ReturnAs, as []ReturnAs) ReturnAs {
	if len(as) > 0 && as[0] != ReturnDefault {
		return as[0]
	}
	return def
}

// get calls a GET endpoint, turning opts in to query parameters.
func get[T any](ctx context.Context, c *Client, path string, opts any, def ReturnAs, as []ReturnAs) (*Result[T], error) {
	if err := validateOptions(path, opts); err != nil {
		return nil, err
	}
	var query Query
	if opts != nil {
		q, err := httpx.StructToQuery(opts)
		if err != nil {
			return nil, &InvalidArgumentError{Op: path, Err: err}
		}
		query = q
	}
	return do[T](ctx, c, Call{
		Path:     path,
		Method:   http.MethodGet,
		Query:    query,
		ReturnAs: pick(def, as),
	})
}

// post calls a POST endpoint with payload as its JSON body. A nil payload sends
// no body at all.
func post[T any](ctx context.Context, c *Client, path string, payload any, def ReturnAs, as []ReturnAs) (*Result[T], error) {
	if err := validateOptions(path, payload); err != nil {
		return nil, err
	}
	return do[T](ctx, c, Call{
		Path:     path,
		Method:   http.MethodPost,
		JSON:     payload,
		ReturnAs: pick(def, as),
	})
}
