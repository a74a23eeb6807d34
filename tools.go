package hydrus

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"

	"github.com/anitschke/go-hydrus/internal/errorx"
	"github.com/anitschke/go-hydrus/types"
	"golang.org/x/net/publicsuffix"
)

// ToolsService holds conveniences built on top of the endpoints.
type ToolsService service

// ServicesOfType gets the services of the given type, sorted by key. No match
// is not an error.
func (s *ToolsService) ServicesOfType(ctx context.Context, serviceType types.ServiceType) (_ []Service, err error) {
	defer errorx.WrapIfError("failed to get services of type "+serviceType.String(), &err)
	return s.filterServices(ctx, func(obj ServiceObject) bool {
		return obj.Type == serviceType
	})
}

// ServicesOfName gets the services with the given name, sorted by key. Names
// are not unique in Hydrus.
func (s *ToolsService) ServicesOfName(ctx context.Context, name string) (_ []Service, err error) {
	defer errorx.WrapIfError(fmt.Sprintf("failed to get services named %q", name), &err)
	return s.filterServices(ctx, func(obj ServiceObject) bool {
		return obj.Name == name
	})
}

func (s *ToolsService) filterServices(ctx context.Context, match func(ServiceObject) bool) ([]Service, error) {
	res, err := s.c.GetServices(ctx, ReturnJSON)
	if err != nil {
		return nil, err
	}

	services := []Service{}
	for key, obj := range res.Value.Services {
		if match(obj) {
			services = append(services, Service{ServiceObject: obj, ServiceKey: key})
		}
	}
	sort.Slice(services, func(i, j int) bool {
		return services[i].ServiceKey < services[j].ServiceKey
	})
	return services, nil
}

// ImportCookies copies the cookies jar holds for u in to Hydrus, so that
// Hydrus can download from a site a Go program has logged in to. The cookies
// are filed under u's registrable domain, which is how Hydrus stores them. It
// returns how many cookies were copied.
func (s *ToolsService) ImportCookies(ctx context.Context, jar http.CookieJar, u *url.URL) (_ int, err error) {
	defer errorx.WrapIfError("failed to import cookies", &err)

	if jar == nil || u == nil {
		return 0, &InvalidArgumentError{Op: "import cookies", Reason: "jar and url are required"}
	}
	host := u.Hostname()
	if host == "" {
		return 0, &InvalidArgumentError{Op: "import cookies", Reason: "url has no host"}
	}

	jarCookies := jar.Cookies(u)
	if len(jarCookies) == 0 {
		return 0, nil
	}

	// IP addresses and single label hosts have no registrable domain.
	domain := host
	if net.ParseIP(host) == nil {
		if site, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			domain = "." + site
		}
	}

	cookies := make([]Cookie, 0, len(jarCookies))
	for _, jc := range jarCookies {
		cookies = append(cookies, Cookie{
			Name:   jc.Name,
			Value:  jc.Value,
			Domain: domain,
			Path:   "/",
		})
	}

	res, err := s.c.Cookies.SetCookies(ctx, SetCookiesOptions{Cookies: cookies}, ReturnSuccess)
	if err != nil {
		return 0, err
	}
	if !res.OK {
		return 0, fmt.Errorf("hydrus refused the cookies with status %d", res.StatusCode)
	}
	return len(cookies), nil
}
