package hydrus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/anitschke/go-hydrus/auth"
	"github.com/anitschke/go-hydrus/httpx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultAddress is where the Hydrus Client API listens unless configured
// otherwise.
const DefaultAddress = "http://127.0.0.1:45869"

type Options struct {
	// Address of the Client API. Defaults to DefaultAddress. A missing scheme
	// is taken to be http.
	Address string

	// AccessKey is an access key or session key. It is sent with every request
	// that does not set its own.
	AccessKey string `validate:"omitempty,printascii"`

	// Debug logs every request and response at debug level and attaches them
	// to endpoint errors.
	Debug bool

	// APIVersionOverride allows talking to a remote whose Client API version
	// equals it instead of SupportedAPIVersion. This combination is not
	// supported. Zero means no override.
	APIVersionOverride int `validate:"gte=0"`

	// HTTPClient is optional and defaults to a new http.Client.
	HTTPClient httpx.Client `validate:"-"`

	// Logger is optional and defaults to the global zerolog logger.
	Logger *zerolog.Logger `validate:"-"`
}

// Client talks to a single Hydrus Client API. It is safe for concurrent use.
type Client struct {
	AddFiles          *AddFilesService
	AddURLs           *AddURLsService
	AddTags           *AddTagsService
	EditRatings       *EditRatingsService
	EditTimes         *EditTimesService
	AddNotes          *AddNotesService
	GetFiles          *GetFilesService
	FileRelationships *FileRelationshipsService
	Services          *ManageServicesService
	Cookies           *CookiesService
	Headers           *HeadersService
	Pages             *PagesService
	Popups            *PopupsService
	Database          *DatabaseService
	Tools             *ToolsService

	baseURL string
	http    httpx.Client
	log     zerolog.Logger
	debug   atomic.Bool
	gate    *versionGate
}

type service struct {
	c *Client
}

func NewClient(opts Options) (*Client, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, &InvalidArgumentError{Op: "new client", Err: err}
	}

	baseURL, err := parseAddress(opts.Address)
	if err != nil {
		return nil, &InvalidArgumentError{Op: "new client", Err: err}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	c := &Client{
		baseURL: baseURL,
		http:    auth.NewAccessKeyClient(opts.HTTPClient, opts.AccessKey),
		log:     logger,
	}
	c.debug.Store(opts.Debug)
	c.gate = newVersionGate(c, opts.APIVersionOverride)

	s := service{c: c}
	c.AddFiles = (*AddFilesService)(&s)
	c.AddURLs = (*AddURLsService)(&s)
	c.AddTags = (*AddTagsService)(&s)
	c.EditRatings = (*EditRatingsService)(&s)
	c.EditTimes = (*EditTimesService)(&s)
	c.AddNotes = (*AddNotesService)(&s)
	c.GetFiles = (*GetFilesService)(&s)
	c.FileRelationships = (*FileRelationshipsService)(&s)
	c.Services = (*ManageServicesService)(&s)
	c.Cookies = (*CookiesService)(&s)
	c.Headers = (*HeadersService)(&s)
	c.Pages = (*PagesService)(&s)
	c.Popups = (*PopupsService)(&s)
	c.Database = (*DatabaseService)(&s)
	c.Tools = (*ToolsService)(&s)

	return c, nil
}

// parseAddress normalizes the configured address to a scheme, host and
// optional path prefix with no trailing slash.
func parseAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		trimmed = DefaultAddress
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse address %q: %w", address, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", address)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}

// Address is the normalized base address requests are sent to.
func (c *Client) Address() string {
	return c.baseURL
}

func (c *Client) Debug() bool {
	return c.debug.Load()
}

// SetDebug turns request and response logging on or off.
func (c *Client) SetDebug(debug bool) {
	c.debug.Store(debug)
}

// Do performs an arbitrary call, for example to an endpoint this library does
// not wrap yet. JSON results are decoded in to generic maps and slices.
func (c *Client) Do(ctx context.Context, call Call) (*Result[any], error) {
	return do[any](ctx, c, call)
}
