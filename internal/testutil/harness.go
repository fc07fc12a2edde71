package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/wordsearchgo/internal/app"
	"github.com/vk/wordsearchgo/internal/hcl"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is everything written to the stdout sink.
	Output string
	// LogOutput is the captured diagnostic stream.
	LogOutput string
	Err       error
	App       *app.App
}

// RunGeneration writes the given HCL fixtures into a temp directory, runs
// the full app over it, and captures puzzle output and logs. A zero seed
// leaves the run nondeterministic.
func RunGeneration(t *testing.T, files map[string]string, seed uint64) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	appConfig, err := app.NewConfig(app.Config{
		GridPath:    tmpDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
		Seed:        seed,
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}

	var testApp *app.App
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		testApp = app.NewApp(out, logs, appConfig, hcl.NewLoader())
		runErr = testApp.Run(context.Background())
	}()

	if os.Getenv("WSG_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}
