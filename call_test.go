package hydrus

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/anitschke/go-hydrus/auth"
	"github.com/anitschke/go-hydrus/internal/fakehydrus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_SuccessIgnoresBody(t *testing.T) {
	client, server := newTestServer(t)
	server.Handle("/manage_database/lock_off", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "this is not json")
	})

	res, err := client.Database.LockOff(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ReturnSuccess, res.As)
	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestClient_Do_SuccessFalseIsNotAnError(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleError("/manage_database/lock_on", http.StatusServiceUnavailable, "DBLockedException", "locked")

	res, err := client.Database.LockOn(context.Background())
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestClient_Do_StatusNeverErrors(t *testing.T) {
	type testData struct {
		name   string
		status int
	}

	testCases := []testData{
		{name: "OK", status: http.StatusOK},
		{name: "NotFound", status: http.StatusNotFound},
		{name: "Forbidden", status: http.StatusForbidden},
		{name: "InternalServerError", status: http.StatusInternalServerError},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			client, server := newTestServer(t)
			server.HandleJSON("/verify_access_key", td.status, `{}`)

			res, err := client.VerifyAccessKey(context.Background(), ReturnStatus)
			require.NoError(t, err)
			assert.Equal(t, td.status, res.StatusCode)
		})
	}
}

func TestClient_Do_EndpointError(t *testing.T) {
	client, server := newTestServer(t)

	_, err := client.Do(context.Background(), Call{Path: "/missing", ReturnAs: ReturnJSON})
	require.Error(t, err)

	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Equal(t, http.StatusNotFound, epErr.StatusCode)
	assert.Equal(t, "/missing", epErr.Path)
	assert.Equal(t, http.MethodGet, epErr.Method)
	assert.Equal(t, "NotFoundException", epErr.ExceptionType)
	assert.Contains(t, epErr.RemoteError, "/missing")
	assert.Nil(t, epErr.RequestDump)
	assert.Contains(t, err.Error(), "404")
	assert.NotContains(t, err.Error(), "HTTP/1.1")

	res, err := client.Do(context.Background(), Call{Path: "/missing", ReturnAs: ReturnStatus})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	assert.Equal(t, 2, server.Count("/missing"))
}

func TestClient_Do_EndpointErrorPlainBody(t *testing.T) {
	client, server := newTestServer(t)
	server.Handle("/get_services", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.GetServices(context.Background())
	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Equal(t, http.StatusInternalServerError, epErr.StatusCode)
	assert.Empty(t, epErr.RemoteError)
	assert.Equal(t, "boom\n", string(epErr.Body))
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_Do_MalformedJSON(t *testing.T) {
	client, server := newTestServer(t)
	server.Handle("/get_services", func(w http.ResponseWriter, r *http.Request) {
		fakehydrus.WriteJSON(w, http.StatusOK, `{"services":`)
	})

	_, err := client.GetServices(context.Background())
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, http.StatusOK, malformed.StatusCode)
	assert.Equal(t, `{"services":`, string(malformed.Body))
}

func TestClient_Do_JSONValue(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleJSON("/custom", http.StatusOK, `{"a":[1,2]}`)

	res, err := client.Do(context.Background(), Call{Path: "/custom"})
	require.NoError(t, err)
	assert.Equal(t, ReturnJSON, res.As)

	value, ok := res.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{float64(1), float64(2)}, value["a"])
	assert.Equal(t, float64(SupportedAPIVersion), value["version"])
}

func TestClient_Do_QueryEncoding(t *testing.T) {
	client, server := newTestServer(t)
	var rawQuery string
	server.Handle("/add_tags/clean_tags", func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		fakehydrus.WriteJSON(w, http.StatusOK, `{"tags":["a","b"]}`)
	})

	res, err := client.AddTags.CleanTags(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Value.Tags)
	assert.Equal(t, "tags=%5B%22a%22%2C%22b%22%5D", rawQuery)

	_, err = client.Do(context.Background(), Call{
		Path:  "/add_tags/clean_tags",
		Query: Query{"tags": []string{"a", "b"}, "skipped": nil, "file_id": 7},
	})
	require.NoError(t, err)
	assert.Equal(t, "file_id=7&tags=%5B%22a%22%2C%22b%22%5D", rawQuery)

	_, err = client.Do(context.Background(), Call{Path: "/add_tags/clean_tags", Query: Query{}})
	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestClient_Do_Method(t *testing.T) {
	type testData struct {
		name      string
		call      Call
		expMethod string
	}

	testCases := []testData{
		{
			name:      "Nothing",
			call:      Call{},
			expMethod: http.MethodGet,
		},
		{
			name:      "Query",
			call:      Call{Query: Query{"a": "b"}},
			expMethod: http.MethodGet,
		},
		{
			name:      "JSON",
			call:      Call{JSON: map[string]string{"a": "b"}},
			expMethod: http.MethodPost,
		},
		{
			name:      "TypedNilJSON",
			call:      Call{JSON: (*SetCookiesOptions)(nil)},
			expMethod: http.MethodGet,
		},
		{
			name:      "Body",
			call:      Call{Body: strings.NewReader("abc")},
			expMethod: http.MethodPost,
		},
		{
			name:      "QueryWins",
			call:      Call{Query: Query{"a": "b"}, JSON: map[string]string{"a": "b"}},
			expMethod: http.MethodGet,
		},
		{
			name:      "Explicit",
			call:      Call{Method: http.MethodPost},
			expMethod: http.MethodPost,
		},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			client, server := newTestServer(t)
			call := td.call
			call.Path = "/method"
			call.ReturnAs = ReturnStatus

			_, err := client.Do(context.Background(), call)
			require.NoError(t, err)

			req, ok := server.Last("/method")
			require.True(t, ok)
			assert.Equal(t, td.expMethod, req.Method)
		})
	}
}

func TestClient_Do_Body(t *testing.T) {
	client, server := newTestServer(t)

	_, err := client.Do(context.Background(), Call{
		Path:     "/json",
		JSON:     map[string]any{"hash": testHash},
		ReturnAs: ReturnStatus,
	})
	require.NoError(t, err)
	req, ok := server.Last("/json")
	require.True(t, ok)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"hash":"`+testHash+`"}`, string(req.Body))

	_, err = client.Do(context.Background(), Call{
		Path:     "/raw",
		Header:   http.Header{"Content-Type": {"image/png"}},
		Body:     bytes.NewReader([]byte{1, 2, 3}),
		ReturnAs: ReturnStatus,
	})
	require.NoError(t, err)
	req, ok = server.Last("/raw")
	require.True(t, ok)
	assert.Equal(t, "image/png", req.Header.Get("Content-Type"))
	assert.Equal(t, []byte{1, 2, 3}, req.Body)
}

func TestClient_Do_TypedNilJSON(t *testing.T) {
	client, server := newTestServer(t)

	_, err := client.Do(context.Background(), Call{
		Path:     "/json",
		Method:   http.MethodPost,
		JSON:     (*SetCookiesOptions)(nil),
		ReturnAs: ReturnStatus,
	})
	require.NoError(t, err)
	req, ok := server.Last("/json")
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Empty(t, req.Header.Get("Content-Type"))
	assert.Empty(t, req.Body)

	_, err = client.Do(context.Background(), Call{
		Path:     "/raw",
		JSON:     map[string]any(nil),
		Body:     bytes.NewReader([]byte{1, 2, 3}),
		ReturnAs: ReturnStatus,
	})
	require.NoError(t, err)
	req, ok = server.Last("/raw")
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, []byte{1, 2, 3}, req.Body)
}

func TestClient_Do_Credentials(t *testing.T) {
	client, server := newTestServer(t)

	_, err := client.VerifyAccessKey(context.Background(), ReturnStatus)
	require.NoError(t, err)
	req, ok := server.Last("/verify_access_key")
	require.True(t, ok)
	assert.Equal(t, testAccessKey, req.Header.Get(auth.AccessKeyHeader))

	version, ok := server.Last("/api_version")
	require.True(t, ok)
	assert.Equal(t, testAccessKey, version.Header.Get(auth.AccessKeyHeader))

	_, err = client.Do(context.Background(), Call{
		Path:     "/verify_access_key",
		Header:   http.Header{auth.SessionKeyHeader: {"session"}},
		ReturnAs: ReturnStatus,
	})
	require.NoError(t, err)
	req, ok = server.Last("/verify_access_key")
	require.True(t, ok)
	assert.Empty(t, req.Header.Get(auth.AccessKeyHeader))
	assert.Equal(t, "session", req.Header.Get(auth.SessionKeyHeader))
}

func TestClient_Do_InvalidCall(t *testing.T) {
	type testData struct {
		name string
		call Call
	}

	testCases := []testData{
		{
			name: "NoPath",
			call: Call{},
		},
		{
			name: "JSONAndBody",
			call: Call{Path: "/x", JSON: map[string]string{}, Body: strings.NewReader("")},
		},
		{
			name: "UnsupportedQueryValue",
			call: Call{Path: "/x", Query: Query{"f": func() {}}},
		},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			client, server := newTestServer(t)

			_, err := client.Do(context.Background(), td.call)
			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Empty(t, requestsTo(server, "/x"))
		})
	}
}

func TestClient_Do_JSONAndBodyMakesNoRequest(t *testing.T) {
	client, server := newTestServer(t)

	_, err := client.Do(context.Background(), Call{Path: "/x", JSON: 1, Body: strings.NewReader("")})
	var argErr *InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Empty(t, server.Requests())
}

func TestClient_Do_Raw(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleError("/raw", http.StatusTeapot, "TeapotException", "short and stout")

	res, err := client.Do(context.Background(), Call{Path: "/raw", ReturnAs: ReturnRaw})
	require.NoError(t, err)
	require.NotNil(t, res.Response)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)

	b, err := io.ReadAll(res.Response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "short and stout")
	assert.NoError(t, res.Close())
}

func TestClient_Do_Stream(t *testing.T) {
	client, server := newTestServer(t)
	server.Handle("/get_files/file", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png bytes"))
	})

	res, err := client.GetFiles.File(context.Background(), FileOptions{SingleFile: SingleFile{FileID: 1}})
	require.NoError(t, err)
	assert.Equal(t, ReturnStream, res.As)
	require.NotNil(t, res.Stream)
	defer func() {
		assert.NoError(t, res.Close())
	}()

	b, err := io.ReadAll(res.Stream)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(b))

	req, ok := server.Last("/get_files/file")
	require.True(t, ok)
	assert.Equal(t, "1", req.Query.Get("file_id"))
}

func TestClient_Do_StreamError(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleError("/get_files/thumbnail", http.StatusNotFound, "NotFoundException", "no such file")

	_, err := client.GetFiles.Thumbnail(context.Background(), SingleFile{Hash: testHash})
	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Equal(t, http.StatusNotFound, epErr.StatusCode)
	assert.Equal(t, "no such file", epErr.RemoteError)
}

func TestClient_Do_TransportError(t *testing.T) {
	server := fakehydrus.New(t, SupportedAPIVersion, TargetHydrusVersion)
	address := server.URL
	server.Close()

	client, err := NewClient(Options{Address: address})
	require.NoError(t, err)

	_, err = client.GetServices(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, apiVersionPath, transportErr.Path)

	var cancelled *CancelledError
	assert.False(t, errors.As(err, &cancelled))
}

func TestClient_Do_HTTPClientTimeout(t *testing.T) {
	client, server := newTestServer(t, func(o *Options) {
		o.HTTPClient = &http.Client{Timeout: 50 * time.Millisecond}
	})
	server.Handle("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := client.Do(context.Background(), Call{Path: "/slow"})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "/slow", transportErr.Path)
}

func TestClient_Do_Cancelled(t *testing.T) {
	client, server := newTestServer(t)
	started := make(chan struct{})
	server.Handle("/slow", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := client.APIVersion(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err = client.Do(ctx, Call{Path: "/slow"})
	var cancelled *CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.Equal(t, "/slow", cancelled.Path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Do_DeadlineExceeded(t *testing.T) {
	client, server := newTestServer(t)
	server.Handle("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := client.APIVersion(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Do(ctx, Call{Path: "/slow"})
	var cancelled *CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Debug(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	client, server := newTestServer(t, func(o *Options) {
		o.Logger = &logger
	})
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

	_, err := client.GetServices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, logs.String())

	client.SetDebug(true)
	assert.True(t, client.Debug())

	_, err = client.GetServices(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "hydrus request")
	assert.Contains(t, logs.String(), "hydrus response")
	assert.Contains(t, logs.String(), "/get_services")

	_, err = client.Do(context.Background(), Call{Path: "/missing"})
	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Contains(t, string(epErr.RequestDump), "GET /missing")
	assert.Contains(t, string(epErr.ResponseDump), "404")
	assert.Contains(t, err.Error(), "request:\nGET /missing HTTP/1.1")
	assert.Contains(t, err.Error(), "response:\nHTTP/1.1 404 Not Found")
}
