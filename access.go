package hydrus

import (
	"context"

	"github.com/anitschke/go-hydrus/types"
)

type RequestNewPermissionsOptions struct {
	// Name is shown to the user in the Hydrus review services dialog.
	Name string `json:"name" validate:"required"`

	Permissions []types.Permission `json:"basic_permissions,omitempty" validate:"omitempty,dive,gte=0,lte=13"`

	// AllPermissions requests every basic permission known to this library.
	// It replaces Permissions. Most callers want PermitsEverything instead.
	AllPermissions bool `json:"-"`

	// PermitsEverything grants all permissions, including ones added to
	// Hydrus in the future.
	PermitsEverything bool `json:"permits_everything,omitempty"`
}

type RequestNewPermissionsResponse struct {
	APIVersionResponse
	AccessKey string `json:"access_key"`
}

type SessionKeyResponse struct {
	APIVersionResponse
	SessionKey string `json:"session_key"`
}

type VerifyAccessKeyResponse struct {
	APIVersionResponse
	Name              string             `json:"name"`
	PermitsEverything bool               `json:"permits_everything"`
	BasicPermissions  []types.Permission `json:"basic_permissions"`
	HumanDescription  string             `json:"human_description"`
}

// GetServiceOptions selects a service by name or by key.
type GetServiceOptions struct {
	ServiceName string `json:"service_name,omitempty"`
	ServiceKey  string `json:"service_key,omitempty"`
}

type GetServiceResponse struct {
	APIVersionResponse
	Service Service `json:"service"`
}

type GetServicesResponse struct {
	APIVersionResponse
	Services ServicesByKey `json:"services"`
}

// RequestNewPermissions asks the user to grant a new access key. The user has
// to have the Client API's permission dialog open for this to succeed.
func (c *Client) RequestNewPermissions(ctx context.Context, opts RequestNewPermissionsOptions, as ...ReturnAs) (*Result[RequestNewPermissionsResponse], error) {
	if opts.AllPermissions {
		opts.Permissions = types.AllPermissions()
	}
	return get[RequestNewPermissionsResponse](ctx, c, "/request_new_permissions", opts, ReturnJSON, as)
}

// SessionKey gets a session key that expires after a day of inactivity or
// when Hydrus restarts.
func (c *Client) SessionKey(ctx context.Context, as ...ReturnAs) (*Result[SessionKeyResponse], error) {
	return get[SessionKeyResponse](ctx, c, "/session_key", nil, ReturnJSON, as)
}

func (c *Client) VerifyAccessKey(ctx context.Context, as ...ReturnAs) (*Result[VerifyAccessKeyResponse], error) {
	return get[VerifyAccessKeyResponse](ctx, c, "/verify_access_key", nil, ReturnJSON, as)
}

func (c *Client) GetService(ctx context.Context, opts GetServiceOptions, as ...ReturnAs) (*Result[GetServiceResponse], error) {
	const path = "/get_service"
	if err := requireOne(path, "service_name, service_key", opts.ServiceName != "", opts.ServiceKey != ""); err != nil {
		return nil, err
	}
	return get[GetServiceResponse](ctx, c, path, opts, ReturnJSON, as)
}

func (c *Client) GetServices(ctx context.Context, as ...ReturnAs) (*Result[GetServicesResponse], error) {
	return get[GetServicesResponse](ctx, c, "/get_services", nil, ReturnJSON, as)
}
