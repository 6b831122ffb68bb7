package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/planner/internal/config"
	"github.com/roach88/planner/internal/testutil"
)

// testEnv is an isolated planner installation in a temp directory.
type testEnv struct {
	dir     string
	config  string
	data    string
	journal string
	clock   *testutil.FixedClock
	logs    *bytes.Buffer
	env     map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	e := &testEnv{
		dir:     dir,
		config:  filepath.Join(dir, "planner.yaml"),
		data:    filepath.Join(dir, "schedule.dat"),
		journal: filepath.Join(dir, "journal.db"),
		clock:   testutil.NewFixedClock(time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)),
		logs:    &bytes.Buffer{},
	}
	e.env = map[string]string{
		config.EnvJournalFile: e.journal,
		config.EnvTimezone:    "UTC",
	}
	return e
}

func (e *testEnv) lookupEnv(key string) (string, bool) {
	v, ok := e.env[key]
	return v, ok
}

func (e *testEnv) writeConfig(t *testing.T, yaml string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.config, []byte(yaml), 0o600))
}

// run executes the CLI with stdin and returns combined output and exit code.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, int) {
	t.Helper()
	opts := &RootOptions{
		Now:       e.clock.Now,
		Sessions:  testutil.NewFixedSessionGenerator("session-1"),
		LookupEnv: e.lookupEnv,
		LogOutput: e.logs,
	}
	cmd := newRootCommand(opts)
	cmd.SetIn(strings.NewReader(stdin))

	out := &bytes.Buffer{}
	full := append([]string{"--config", e.config, "--data", e.data}, args...)
	code := execute(cmd, full, out, out)
	return out.String(), code
}

// mustRun runs args and requires a zero exit code.
func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, code := e.run(t, "", args...)
	require.Equal(t, ExitSuccess, code, "planner %v:\n%s", args, out)
	return out
}

// seed adds the standard two events: a work standup today and a home
// errand later in the month.
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	e.mustRun(t, "add", "--date", "15/06/2025", "--time", "09:00", "-d", "Standup", "-p", "2", "-c", "Work")
	e.mustRun(t, "add", "--date", "20/06/2025", "--time", "10:00", "-d", "Buy groceries", "-p", "1", "-c", "Home")
}

func decodeResponse(t *testing.T, out string, data any) CLIResponse {
	t.Helper()
	var raw struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), out)
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return raw.CLIResponse
}
