package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

const (
	testAddressEnvVar   = "GO_HYDRUS_TEST_ADDRESS"
	testAccessKeyEnvVar = "GO_HYDRUS_TEST_ACCESS_KEY"
	testEnvFileEnvVar   = "GO_HYDRUS_TEST_ENV_FILE"
)

// TestServer describes the live Hydrus client used by integration tests.
type TestServer struct {
	Address   string
	AccessKey string
}

// TestServerConfig gets the live Hydrus client used for testing.
//
// Details are obtained from the "GO_HYDRUS_TEST_ADDRESS" and
// "GO_HYDRUS_TEST_ACCESS_KEY" environment variables. Values missing from the
// environment are read from the file named by "GO_HYDRUS_TEST_ENV_FILE", or a
// .env file at the root of the repository if that is not set.
func TestServerConfig() (TestServer, error) {
	envFile := os.Getenv(testEnvFileEnvVar)
	if envFile == "" {
		envFile = defaultEnvFile()
	}
	if envFile != "" {
		// A missing file is fine, the variables may come from the environment.
		_ = godotenv.Load(envFile)
	}

	address := os.Getenv(testAddressEnvVar)
	accessKey := os.Getenv(testAccessKeyEnvVar)

	if address == "" || accessKey == "" {
		return TestServer{}, fmt.Errorf("the environment variables %q and %q must be set to configure the Hydrus client used for testing", testAddressEnvVar, testAccessKeyEnvVar)
	}

	return TestServer{
		Address:   address,
		AccessKey: accessKey,
	}, nil
}

func defaultEnvFile() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", ".env")
}
