package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/finance-app/cli/internal/api"
	"github.com/gravitrone/finance-app/cli/internal/config"
)

// isolateEnv points HOME and the dotenv lookup at a temp dir and clears
// FINANCE_* so host settings cannot leak into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"FINANCE_API_URL", "FINANCE_LOCALE", "FINANCE_REQUEST_TIMEOUT", "FINANCE_LOG_FILE", "FINANCE_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	oldEnvFile := config.EnvFile
	config.EnvFile = filepath.Join(dir, ".env")
	t.Cleanup(func() { config.EnvFile = oldEnvFile })
	return dir
}

func newTestRoot(sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	root := &cobra.Command{Use: "finance", SilenceUsage: true, SilenceErrors: true}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(sub)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	return root, out
}

func healthServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != api.HealthPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStatusCmdPrintsHealthyStatus(t *testing.T) {
	isolateEnv(t)
	srv := healthServer(t, http.StatusOK, `{"status":"healthy","version":"1.0.0"}`)

	root, out := newTestRoot(StatusCmd())
	root.SetArgs([]string{"status", "--api-url", srv.URL})
	require.NoError(t, root.Execute())
	assert.Equal(t, "API Státusz: healthy\n", out.String())
}

func TestStatusCmdPrintsErrorSentinelWithoutFailing(t *testing.T) {
	isolateEnv(t)
	srv := healthServer(t, http.StatusInternalServerError, "")

	root, out := newTestRoot(StatusCmd())
	root.SetArgs([]string{"status", "--api-url", srv.URL, "--locale", "en"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "API Status: error - API unavailable\n", out.String())
}

func TestStatusCmdUsesEnvironmentURL(t *testing.T) {
	isolateEnv(t)
	srv := healthServer(t, http.StatusOK, `{"status":"ok"}`)
	t.Setenv("FINANCE_API_URL", srv.URL)

	root, out := newTestRoot(StatusCmd())
	root.SetArgs([]string{"status"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "API Státusz: ok\n", out.String())
}

func TestStatusCmdRejectsInvalidURL(t *testing.T) {
	isolateEnv(t)

	root, _ := newTestRoot(StatusCmd())
	root.SetArgs([]string{"status", "--api-url", "localhost"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestStatusCmdWritesLogFile(t *testing.T) {
	dir := isolateEnv(t)
	srv := healthServer(t, http.StatusOK, `{"status":"ok"}`)
	logPath := filepath.Join(dir, "finance.log")

	root, _ := newTestRoot(StatusCmd())
	root.SetArgs([]string{"status", "--api-url", srv.URL, "--log-file", logPath})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "status check")
	assert.Contains(t, string(data), srv.URL)
}

func TestRunStatusWithNilClientPrintsSentinel(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, RunStatus(context.Background(), nil, "hu", out))
	assert.Equal(t, "API Státusz: error - API nem elérhető\n", out.String())
}

func TestRunStatusCanceledContextPrintsSentinel(t *testing.T) {
	srv := healthServer(t, http.StatusOK, `{"status":"ok"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &bytes.Buffer{}
	require.NoError(t, RunStatus(ctx, api.NewClient(srv.URL), "hu", out))
	assert.Equal(t, "API Státusz: error - API nem elérhető\n", out.String())
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	isolateEnv(t)

	root, out := newTestRoot(ConfigCmd())
	root.SetArgs([]string{"config", "show", "--timeout", "2s"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "api_url: http://localhost:8000")
	assert.Contains(t, out.String(), "locale: hu")
	assert.Contains(t, out.String(), "request_timeout: 2s")
}

func TestConfigSetPersistsValue(t *testing.T) {
	isolateEnv(t)

	root, out := newTestRoot(ConfigCmd())
	root.SetArgs([]string{"config", "set", "api_url", "http://finance.local:8000"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "api_url saved to")

	info, err := os.Stat(config.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://finance.local:8000", cfg.APIURL)
}

func TestConfigSetRejectsUnknownKeyAndBadValues(t *testing.T) {
	isolateEnv(t)

	cases := [][]string{
		{"config", "set", "theme", "dark"},
		{"config", "set", "locale", "de"},
		{"config", "set", "request_timeout", "soon"},
	}
	for _, args := range cases {
		root, _ := newTestRoot(ConfigCmd())
		root.SetArgs(args)
		assert.Error(t, root.Execute(), args)
	}

	_, err := os.Stat(config.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestConfigSetRequiresTwoArgs(t *testing.T) {
	isolateEnv(t)

	root, _ := newTestRoot(ConfigCmd())
	root.SetArgs([]string{"config", "set", "api_url"})
	assert.Error(t, root.Execute())
}
