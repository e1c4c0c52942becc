package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandeepkv93/taskcal/internal/config"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type harness struct {
	t    *testing.T
	args []string
}

func newHarness(t *testing.T, backend string) harness {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "tasks.json")
	if backend != config.BackendJSON {
		data = filepath.Join(dir, "store-"+backend)
	}
	return harness{t: t, args: []string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--backend", backend,
		"--data", data,
		"--log-level", "error",
	}}
}

func (h harness) run(args ...string) (string, error) {
	h.t.Helper()
	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(append([]string{}, h.args...), args...))
	err := root.Execute()
	return out.String(), err
}

func (h harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "taskcal %v", args)
	return out
}

func TestAddAndListAcrossBackends(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite, config.BackendDiskv} {
		t.Run(backend, func(t *testing.T) {
			h := newHarness(t, backend)
			h.mustRun("add", "--date", "2024-05-01", "A")
			h.mustRun("add", "--date", "2024-05-01", "B")
			h.mustRun("add", "--date", "2024-05-02", "--desc", "notes", "C")

			out := h.mustRun("list")
			newer := strings.Index(out, "Thursday 2024-05-02")
			older := strings.Index(out, "Wednesday 2024-05-01")
			require.True(t, newer >= 0 && older > newer, "groups out of order:\n%s", out)
			assert.Less(t, strings.Index(out, "[ ] A"), strings.Index(out, "[ ] B"))
			assert.Contains(t, out, "3 tasks, 0 done, 3 shown")

			filtered := h.mustRun("list", "--date", "2024-05-01")
			assert.NotContains(t, filtered, "[ ] C")
			assert.Contains(t, filtered, "2 shown")

			empty := h.mustRun("list", "--date", "2024-05-20")
			assert.Contains(t, empty, "(no tasks for that specific date: 2024-05-20)")
		})
	}
}

func TestListEmptyStore(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	out := h.mustRun("list")
	assert.Contains(t, out, "(no tasks registered)")
}

func TestAddRejectsBlankTitleAndBadDate(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	_, err := h.run("add", "   ")
	require.ErrorIs(t, err, model.ErrValidation)
	_, err = h.run("add", "--date", "2024-13-01", "x")
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, h.mustRun("list"), "(no tasks registered)")
}

func TestDoRunsPaletteCommands(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	out := h.mustRun("add", "--date", "2024-05-01", "A")
	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 2, "unexpected add output %q", out)
	id := fields[1]

	assert.Equal(t, "toggled task "+id+"\n", h.mustRun("do", "toggle", id))
	assert.Contains(t, h.mustRun("list"), "[x] A")

	h.mustRun("do", "update", id, "A2", "|", "details")
	assert.Contains(t, h.mustRun("list"), "A2")

	assert.Equal(t, "no such task\n", h.mustRun("do", "delete", "42"))

	h.mustRun("do", "delete", id)
	assert.Contains(t, h.mustRun("list"), "(no tasks registered)")

	_, err := h.run("do", "snooze", id)
	require.Error(t, err)
}

func TestCalPrintsMonth(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	h.mustRun("add", "--date", "2024-05-01", "A")
	out := h.mustRun("cal", "--month", "2024-05")
	assert.True(t, strings.HasPrefix(out, "May 2024\nSu Mo Tu We Th Fr Sa\n"), "unexpected calendar:\n%s", out)
	assert.Contains(t, out, "26 27 28 29 30 31")

	_, err := h.run("cal", "--month", "May")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	h.mustRun("--ephemeral", "add", "--date", "2024-05-01", "gone")
	assert.Contains(t, h.mustRun("list"), "(no tasks registered)")
}

func TestConfigFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendJSON
	cfg.Storage.Path = filepath.Join(dir, "from-file.json")
	cfg.Log.Level = "error"
	require.NoError(t, config.Write(cfgPath, cfg))

	o := &rootOptions{ConfigPath: cfgPath}
	got, err := resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, cfg.Storage.Path, got.Storage.Path)

	t.Setenv("TASKCAL_STORAGE_BACKEND", "sqlite")
	got, err = resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, got.Storage.Backend)

	o.Backend = "DISKV"
	got, err = resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, config.BackendDiskv, got.Storage.Backend, "flags win over env")

	o.Backend = "tape"
	_, err = resolveConfig(o)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	h := newHarness(t, config.BackendJSON)
	assert.Equal(t, "dev\n", h.mustRun("version", "--short"))
}

func TestDefaultDataPathFollowsBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	o := &rootOptions{ConfigPath: filepath.Join(dir, "missing.toml"), Backend: "sqlite"}
	got, err := resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "taskcal", config.DefaultSQLiteFileName), got.Storage.Path)

	o.Backend = "diskv"
	got, err = resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "taskcal", config.DefaultDiskvDirName), got.Storage.Path)

	o.Backend = ""
	got, err = resolveConfig(o)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "taskcal", config.DefaultJSONFileName), got.Storage.Path)
}
