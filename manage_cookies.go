package hydrus

import (
	"context"
	"fmt"

	"github.com/anitschke/go-hydrus/httpx"
)

// CookiesService wraps the /manage_cookies endpoints.
type CookiesService service

// Cookie is sent and received as the array [name, value, domain, path,
// expires]. Expires is a unix timestamp, nil for a session cookie.
type Cookie struct {
	Name    string
	Value   string
	Domain  string
	Path    string
	Expires *int64
}

func (c Cookie) MarshalJSON() ([]byte, error) {
	return httpx.MarshalJSON([]any{c.Name, c.Value, c.Domain, c.Path, c.Expires})
}

func (c *Cookie) UnmarshalJSON(b []byte) error {
	var fields []any
	if err := httpx.UnmarshalJSON(b, &fields); err != nil {
		return err
	}
	if len(fields) != 5 {
		return fmt.Errorf("cookie has %d fields, want 5", len(fields))
	}

	var strs [4]string
	for i := range strs {
		s, ok := fields[i].(string)
		if !ok && fields[i] != nil {
			return fmt.Errorf("cookie field %d is %T, want string", i, fields[i])
		}
		strs[i] = s
	}
	*c = Cookie{Name: strs[0], Value: strs[1], Domain: strs[2], Path: strs[3]}

	switch v := fields[4].(type) {
	case nil:
	case float64:
		expires := int64(v)
		c.Expires = &expires
	default:
		return fmt.Errorf("cookie expiry is %T, want number", v)
	}
	return nil
}

type GetCookiesResponse struct {
	APIVersionResponse
	Cookies []Cookie `json:"cookies"`
}

// SetCookiesOptions sets cookies in Hydrus's session manager. A cookie with an
// empty Value is deleted.
type SetCookiesOptions struct {
	Cookies []Cookie `json:"cookies" validate:"required"`
}

// GetCookies gets the cookies Hydrus has for a domain. Hydrus stores cookies
// per second-level domain, so asking for a subdomain returns the cookies of
// the whole site.
func (s *CookiesService) GetCookies(ctx context.Context, domain string, as ...ReturnAs) (*Result[GetCookiesResponse], error) {
	const path = "/manage_cookies/get_cookies"
	if domain == "" {
		return nil, &InvalidArgumentError{Op: path, Reason: "domain is required"}
	}
	return get[GetCookiesResponse](ctx, s.c, path, struct {
		Domain string `json:"domain"`
	}{Domain: domain}, ReturnJSON, as)
}

func (s *CookiesService) SetCookies(ctx context.Context, opts SetCookiesOptions, as ...ReturnAs) (*Result[APIVersionResponse], error) {
	return post[APIVersionResponse](ctx, s.c, "/manage_cookies/set_cookies", opts, ReturnSuccess, as)
}
