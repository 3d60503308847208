// Package testutil provides the shared setup used by the xtgeo test
// suites: a scratch directory, the test-data path and the big-tests
// opt-in flags.
package testutil

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

const (
	// EnvTestPath points at the directory holding test data files.
	EnvTestPath = "XTG_TESTPATH"

	// EnvBigTests and EnvBigTest are presence-only flags enabling the
	// long-running test suites. Both spellings are honored.
	EnvBigTests = "XTG_BIGTESTS"
	EnvBigTest  = "XTG_BIGTEST"

	// DefaultTestPath is used when XTG_TESTPATH is unset.
	DefaultTestPath = "../xtgeo-testdata"

	tmpDirName = "TMP"
)

// Setup holds the resolved test environment.
type Setup struct {
	TmpDir   string
	TestPath string
	BigTests bool
}

// NewSetup prepares the test environment: creates the scratch directory
// (tolerating a concurrent creation race), validates the test-data path
// and reads the big-tests flags.
func NewSetup() (*Setup, error) {
	// MkdirAll succeeds if the directory appears between check and
	// create, so races with parallel test runners are not errors.
	if err := os.MkdirAll(tmpDirName, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create scratch directory")
	}

	testPath := os.Getenv(EnvTestPath)
	if testPath == "" {
		testPath = DefaultTestPath
	}
	info, err := os.Stat(testPath)
	if err != nil || !info.IsDir() {
		return nil, errors.Errorf("test path is not valid: %s", testPath)
	}

	_, big1 := os.LookupEnv(EnvBigTests)
	_, big2 := os.LookupEnv(EnvBigTest)

	return &Setup{
		TmpDir:   tmpDirName,
		TestPath: testPath,
		BigTests: big1 || big2,
	}, nil
}

// TempDir creates a temporary directory and returns a cleanup function.
func TempDir(t *testing.T) (string, func()) {
	t.Helper()
	dir, err := os.MkdirTemp("", "xtgeo-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	return dir, func() { os.RemoveAll(dir) }
}

// SkipUnlessBigTests skips t when the big-tests flags are absent.
func SkipUnlessBigTests(t *testing.T) {
	t.Helper()
	_, big1 := os.LookupEnv(EnvBigTests)
	_, big2 := os.LookupEnv(EnvBigTest)
	if !big1 && !big2 {
		t.Skip("set XTG_BIGTESTS to enable")
	}
}
