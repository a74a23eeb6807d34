package hydrus

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httputil"
	"reflect"
	"strconv"

	"github.com/anitschke/go-hydrus/httpx"
	"github.com/anitschke/go-hydrus/internal/errorx"
	"github.com/tidwall/gjson"
)

// ReturnAs selects how the response to a call is interpreted.
type ReturnAs int

const (
	// ReturnDefault uses the default of the endpoint being called. For
	// Client.Do that is ReturnJSON.
	ReturnDefault ReturnAs = iota

	// ReturnRaw hands back the unprocessed *http.Response whatever its status.
	// The caller must close the body.
	ReturnRaw

	// ReturnJSON parses the body as JSON. Non 2xx responses are an
	// *EndpointError.
	ReturnJSON

	// ReturnSuccess reports whether the status was 2xx. It never fails
	// because of the status.
	ReturnSuccess

	// ReturnStatus reports the status code. It never fails because of the
	// status.
	ReturnStatus

	// ReturnStream hands back the body for the caller to read. Non 2xx
	// responses are an *EndpointError.
	ReturnStream
)

func (r ReturnAs) String() string {
	switch r {
	case ReturnDefault:
		return "default"
	case ReturnRaw:
		return "raw"
	case ReturnJSON:
		return "json"
	case ReturnSuccess:
		return "success"
	case ReturnStatus:
		return "status"
	case ReturnStream:
		return "byte-stream"
	}
	return "return as(" + strconv.Itoa(int(r)) + ")"
}

// Query holds query parameters. See httpx.EncodeQuery for how values are
// serialized.
type Query map[string]any

// Call describes a single request to the Client API.
type Call struct {
	// Path is the endpoint, for example "/get_files/search_files".
	Path string

	// Method is inferred when empty: GET if Query is set, POST if there is a
	// JSON or Body payload, GET otherwise.
	Method string

	// Header holds extra headers, for example a session key that should be
	// used instead of the client's access key.
	Header http.Header

	// JSON is encoded as the request body. At most one of JSON and Body may
	// be set.
	JSON any

	// Body is sent as is. Set a Content-Type in Header to describe it.
	Body io.Reader

	Query Query

	ReturnAs ReturnAs
}

// Caller performs a single Client API call.
type Caller interface {
	Do(ctx context.Context, call Call) (*Result[any], error)
}

var _ = (Caller)((*Client)(nil))

// errorBodyLimit caps how much of an error body is kept on an EndpointError.
const errorBodyLimit = 64 << 10

func (call Call) method() string {
	switch {
	case call.Method != "":
		return call.Method
	case call.Query != nil:
		return http.MethodGet
	case call.hasJSON() || call.Body != nil:
		return http.MethodPost
	default:
		return http.MethodGet
	}
}

// hasJSON reports whether there is a JSON payload. A typed nil pointer, map or
// slice counts as no payload.
func (call Call) hasJSON() bool {
	if call.JSON == nil {
		return false
	}
	v := reflect.ValueOf(call.JSON)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		return !v.IsNil()
	default:
		return true
	}
}

func (call Call) validate() error {
	if call.Path == "" {
		return &InvalidArgumentError{Op: "call", Reason: "path is required"}
	}
	if call.hasJSON() && call.Body != nil {
		return &InvalidArgumentError{Op: call.Path, Reason: "json and body payloads are mutually exclusive"}
	}
	return nil
}

// do runs a call after making sure the remote version has been checked.
func do[T any](ctx context.Context, c *Client, call Call) (*Result[T], error) {
	if err := call.validate(); err != nil {
		return nil, err
	}
	if call.Path != apiVersionPath {
		if _, err := c.gate.ensure(ctx); err != nil {
			return nil, err
		}
	}
	return dispatch[T](ctx, c, call)
}

// dispatch sends a call and interprets the response according to its
// ReturnAs. It does not consult the version gate.
func dispatch[T any](ctx context.Context, c *Client, call Call) (*Result[T], error) {
	as := call.ReturnAs
	if as == ReturnDefault {
		as = ReturnJSON
	}
	debug := c.Debug()
	if debug {
		c.log.Debug().Str("endpoint", call.Path).Str("return_as", as.String()).Msg("hydrus call")
	}

	req, err := c.newRequest(ctx, call)
	if err != nil {
		return nil, err
	}

	var reqDump []byte
	if debug {
		reqDump, _ = httputil.DumpRequestOut(req, call.hasJSON())
		c.log.Debug().Str("endpoint", call.Path).Bytes("request", reqDump).Msg("hydrus request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if cause := errorx.ContextError(ctx); cause != nil {
			return nil, &CancelledError{Path: call.Path, Err: cause}
		}
		return nil, &TransportError{Path: call.Path, Err: err}
	}

	var respDump []byte
	if debug {
		respDump, _ = httputil.DumpResponse(resp, as != ReturnStream && as != ReturnRaw)
		c.log.Debug().Str("endpoint", call.Path).Int("status", resp.StatusCode).Bytes("response", respDump).Msg("hydrus response")
	}

	result := &Result[T]{
		As:         as,
		StatusCode: resp.StatusCode,
	}
	ok := httpx.IsSuccess(resp.StatusCode)

	switch as {
	case ReturnRaw:
		result.Response = resp
		return result, nil

	case ReturnStatus:
		_ = httpx.DrainAndClose(resp)
		return result, nil

	case ReturnSuccess:
		result.OK = ok
		_ = httpx.DrainAndClose(resp)
		return result, nil

	case ReturnStream:
		if !ok {
			defer resp.Body.Close()
			return nil, c.endpointError(call.Path, req, resp, reqDump, respDump)
		}
		result.Stream = resp.Body
		return result, nil

	case ReturnJSON:
		defer resp.Body.Close()
		if !ok {
			return nil, c.endpointError(call.Path, req, resp, reqDump, respDump)
		}
		if err := httpx.ReadJSON(resp.Body, &result.Value); err != nil {
			var decodeErr *httpx.DecodeError
			if errors.As(err, &decodeErr) {
				return nil, &MalformedResponseError{
					Path:       call.Path,
					StatusCode: resp.StatusCode,
					Body:       decodeErr.Body,
					Err:        decodeErr.Err,
				}
			}
			if cause := errorx.ContextError(ctx); cause != nil {
				return nil, &CancelledError{Path: call.Path, Err: cause}
			}
			return nil, &TransportError{Path: call.Path, Err: err}
		}
		return result, nil

	default:
		_ = resp.Body.Close()
		return nil, &InvalidArgumentError{Op: call.Path, Reason: "unknown return type " + as.String()}
	}
}

func (c *Client) newRequest(ctx context.Context, call Call) (*http.Request, error) {
	endpoint := c.baseURL + call.Path
	if call.Query != nil {
		encoded, err := httpx.EncodeQuery(call.Query)
		if err != nil {
			return nil, &InvalidArgumentError{Op: call.Path, Err: err}
		}
		if encoded != "" {
			endpoint += "?" + encoded
		}
	}

	body := call.Body
	if call.hasJSON() {
		b, err := httpx.MarshalJSON(call.JSON)
		if err != nil {
			return nil, &InvalidArgumentError{Op: call.Path, Reason: "json payload could not be encoded", Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := httpx.NewRequest(ctx, call.method(), endpoint, call.Header, body)
	if err != nil {
		return nil, &InvalidArgumentError{Op: call.Path, Err: err}
	}
	if call.hasJSON() && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) endpointError(path string, req *http.Request, resp *http.Response, reqDump, respDump []byte) error {
	body, _ := httpx.ReadLimited(resp.Body, errorBodyLimit)
	epErr := &EndpointError{
		Path:       path,
		Method:     req.Method,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		epErr.RemoteError = parsed.Get("error").String()
		epErr.ExceptionType = parsed.Get("exception_type").String()
	}
	if c.Debug() {
		epErr.RequestDump = reqDump
		epErr.ResponseDump = respDump
	}
	return epErr
}
