package hydrus

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anitschke/go-hydrus/internal/fakehydrus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientVersion(t *testing.T) {
	assert.Equal(t, 81, SupportedAPIVersion)
	assert.Equal(t, 641, TargetHydrusVersion)

	v := APIVersionResponse{Version: 81, HydrusVersion: 641}.Semver()
	assert.Equal(t, "81.641.0", v.String())
}

func TestVersionGate_Match(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)
	assert.False(t, client.Checked())

	for i := 0; i < 3; i++ {
		_, err := client.GetServices(context.Background())
		require.NoError(t, err)
	}
	assert.True(t, client.Checked())
	assert.Equal(t, 1, server.Count(apiVersionPath))
	assert.Equal(t, 3, server.Count("/get_services"))
}

func TestVersionGate_APIMismatch(t *testing.T) {
	client, server := newTestServer(t)
	server.SetVersions(SupportedAPIVersion+1, TargetHydrusVersion)

	_, err := client.GetServices(context.Background())
	var mismatch *VersionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, ComponentAPI, mismatch.Component)
	assert.Equal(t, SupportedAPIVersion, mismatch.Supported)
	assert.Equal(t, SupportedAPIVersion+1, mismatch.Remote)

	_, err = client.GetServices(context.Background())
	require.ErrorAs(t, err, &mismatch)

	assert.Equal(t, 1, server.Count(apiVersionPath))
	assert.Equal(t, 0, server.Count("/get_services"))
	assert.False(t, client.Checked())
}

func TestVersionGate_Override(t *testing.T) {
	type testData struct {
		name     string
		override int
		remote   int
		expErr   bool
	}

	testCases := []testData{
		{
			name:     "Matching",
			override: SupportedAPIVersion + 1,
			remote:   SupportedAPIVersion + 1,
			expErr:   false,
		},
		{
			name:     "NotMatching",
			override: SupportedAPIVersion + 2,
			remote:   SupportedAPIVersion + 1,
			expErr:   true,
		},
		{
			name:     "UnusedWhenSupported",
			override: SupportedAPIVersion + 2,
			remote:   SupportedAPIVersion,
			expErr:   false,
		},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := zerolog.New(&logs)
			client, server := newTestServer(t, func(o *Options) {
				o.APIVersionOverride = td.override
				o.Logger = &logger
			})
			server.SetVersions(td.remote, TargetHydrusVersion)
			server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

			_, err := client.GetServices(context.Background())
			if td.expErr {
				var mismatch *VersionMismatchError
				require.ErrorAs(t, err, &mismatch)
				return
			}
			require.NoError(t, err)
			if td.remote != SupportedAPIVersion {
				assert.Contains(t, logs.String(), "api version override in use")
				assert.Contains(t, logs.String(), `"level":"warn"`)
			}
		})
	}
}

func TestVersionGate_HydrusMismatchWarns(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	client, server := newTestServer(t, func(o *Options) {
		o.Logger = &logger
	})
	server.SetVersions(SupportedAPIVersion, TargetHydrusVersion+5)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

	_, err := client.GetServices(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "hydrus version differs")
	assert.Contains(t, logs.String(), `"hydrus_version":646`)
}

func TestVersionGate_ConcurrentFirstCalls(t *testing.T) {
	const callers = 10

	client, server := newTestServer(t)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	server.Handle(apiVersionPath, func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(entered) })
		<-release
		fakehydrus.WriteJSON(w, http.StatusOK, fakehydrus.Versions(SupportedAPIVersion, TargetHydrusVersion))
	})

	var wg sync.WaitGroup
	errs := make([]error, callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = client.GetServices(context.Background())
		}(i)
	}

	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, server.Count(apiVersionPath))
	assert.Equal(t, callers, server.Count("/get_services"))
}

func TestVersionGate_RetriesAfterFailure(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)
	server.HandleError(apiVersionPath, http.StatusInternalServerError, "Exception", "starting up")

	_, err := client.GetServices(context.Background())
	var epErr *EndpointError
	require.ErrorAs(t, err, &epErr)
	assert.Equal(t, apiVersionPath, epErr.Path)
	assert.False(t, client.Checked())

	server.HandleJSON(apiVersionPath, http.StatusOK, `{}`)
	_, err = client.GetServices(context.Background())
	require.NoError(t, err)
	assert.True(t, client.Checked())
	assert.Equal(t, 2, server.Count(apiVersionPath))
}

func TestVersionGate_WaiterCancelled(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	server.Handle(apiVersionPath, func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(entered) })
		<-release
		fakehydrus.WriteJSON(w, http.StatusOK, fakehydrus.Versions(SupportedAPIVersion, TargetHydrusVersion))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancelledErr := make(chan error, 1)
	go func() {
		_, err := client.GetServices(ctx)
		cancelledErr <- err
	}()

	<-entered
	patientErr := make(chan error, 1)
	go func() {
		_, err := client.GetServices(context.Background())
		patientErr <- err
	}()

	cancel()
	err := <-cancelledErr
	var cancelled *CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	assert.NoError(t, <-patientErr)
	assert.Equal(t, 1, server.Count(apiVersionPath))
	assert.True(t, client.Checked())
}

func TestVersionGate_FirstCallerDeadline(t *testing.T) {
	client, server := newTestServer(t)
	server.HandleJSON("/get_services", http.StatusOK, `{"services":{}}`)

	entered := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	var calls atomic.Int32
	server.Handle(apiVersionPath, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(entered)
			select {
			case <-r.Context().Done():
			case <-release:
			}
			return
		}
		fakehydrus.WriteJSON(w, http.StatusOK, fakehydrus.Versions(SupportedAPIVersion, TargetHydrusVersion))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	hastyErr := make(chan error, 1)
	go func() {
		_, err := client.GetServices(ctx)
		hastyErr <- err
	}()

	<-entered
	patientErr := make(chan error, 1)
	go func() {
		_, err := client.GetServices(context.Background())
		patientErr <- err
	}()

	err := <-hastyErr
	var cancelled *CancelledError
	require.ErrorAs(t, err, &cancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.NoError(t, <-patientErr)
	assert.Equal(t, 2, server.Count(apiVersionPath))
	assert.True(t, client.Checked())
}

func TestClient_APIVersion(t *testing.T) {
	client, server := newTestServer(t)

	res, err := client.APIVersion(context.Background(), ReturnStatus)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, client.Checked())

	res, err = client.APIVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SupportedAPIVersion, res.Value.Version)
	assert.Equal(t, TargetHydrusVersion, res.Value.HydrusVersion)
	assert.True(t, client.Checked())

	res, err = client.APIVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SupportedAPIVersion, res.Value.Version)
	assert.Equal(t, 3, server.Count(apiVersionPath))
}

func TestDatabase_GetClientOptions(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		client, server := newTestServer(t)
		server.HandleJSON("/manage_database/get_client_options", http.StatusOK, `{"old_options":{"confirm_trash":true},"options":{}}`)

		res, err := client.Database.GetClientOptions(context.Background())
		require.NoError(t, err)
		assert.Equal(t, true, res.Value.OldOptions["confirm_trash"])
	})

	t.Run("HydrusMismatch", func(t *testing.T) {
		client, server := newTestServer(t)
		server.SetVersions(SupportedAPIVersion, TargetHydrusVersion+1)

		_, err := client.Database.GetClientOptions(context.Background())
		var mismatch *VersionMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ComponentHydrus, mismatch.Component)
		assert.Equal(t, TargetHydrusVersion, mismatch.Supported)
		assert.Equal(t, TargetHydrusVersion+1, mismatch.Remote)
		assert.Equal(t, 0, server.Count("/manage_database/get_client_options"))
	})
}
