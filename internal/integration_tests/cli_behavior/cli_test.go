package cli_behavior

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/wordsearchgo/internal/app"
	"github.com/vk/wordsearchgo/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-grid", "/test/grid",
				"--log-level=debug",
				"--log-format=json",
				"--workers=50",
				"--healthcheck-port=8080",
				"--seed=42",
			},
			expectedConfig: &app.Config{
				GridPath:        "/test/grid",
				LogLevel:        "debug",
				LogFormat:       "json",
				WorkerCount:     50,
				HealthcheckPort: 8080,
				Seed:            42,
			},
		},
		{
			name: "Shorthand flag and defaults",
			args: []string{"-g", "/short/path"},
			expectedConfig: &app.Config{
				GridPath:        "/short/path",
				LogLevel:        "info",
				LogFormat:       "text",
				WorkerCount:     10,
				HealthcheckPort: 0,
				Seed:            0,
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				GridPath:    "/positional/path",
				LogLevel:    "info",
				LogFormat:   "text",
				WorkerCount: 10,
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:       "No path triggers clean exit with usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.True(t, strings.Contains(output, "Usage:"), "Expected help text to be printed")
			},
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=loud", "/p"},
			expectErr: true,
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml", "/p"},
			expectErr: true,
		},
		{
			name:      "Zero workers rejected",
			args:      []string{"--workers=0", "/p"},
			expectErr: true,
		},
		{
			name:      "Unknown flag",
			args:      []string{"--frobnicate"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			config, shouldExit, err := cli.Parse(tc.args, out)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
