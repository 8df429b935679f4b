package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/config"
	"github.com/juparave/lastoff/internal/editor"
)

type fakeLauncher struct {
	launched  []string
	installed []string
}

func (f *fakeLauncher) Launch(_ context.Context, command string) error {
	f.launched = append(f.launched, command)
	return nil
}

func (f *fakeLauncher) Install(_ context.Context, pkg string) error {
	f.installed = append(f.installed, pkg)
	return nil
}

type harness struct {
	out, errOut bytes.Buffer
	launcher    fakeLauncher
}

func (h *harness) run(t *testing.T, cfg *config.Config, input string, installed ...string) {
	t.Helper()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/work/notes.txt", []byte("TODO: refactor\nPatient SSN here\nnothing"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/work/logo.png", []byte("TODO hidden"), 0o644))

	probe := editor.ProbeFunc(func(tool string) bool {
		for _, i := range installed {
			if i == tool {
				return true
			}
		}
		return false
	})

	r := NewRunner(cfg, zap.NewNop().Sugar(),
		WithFilesystem(fs),
		WithIO(strings.NewReader(input), &h.out, &h.errOut),
		WithProbe(probe),
		WithLauncher(&h.launcher),
	)
	require.NoError(t, r.Run(context.Background()))
}

func testConfig(root string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.RootPath = root
	return cfg
}

func TestRunOpensSelectedFinding(t *testing.T) {
	h := &harness{}
	h.run(t, testConfig("/work"), "2\n2\n", "vim")

	out := h.out.String()
	assert.Contains(t, out, "Scanning: /work")
	assert.Contains(t, out, "2 total items to review")
	assert.Contains(t, out, "SELECTED: Patient SSN here")
	assert.Contains(t, out, ">>>    2: Patient SSN here")
	assert.NotContains(t, out, "logo.png")
	assert.Equal(t, []string{`gnome-terminal -- bash -c 'vim +2 '\''/work/notes.txt'\''; exec bash'`}, h.launcher.launched)
	assert.Empty(t, h.errOut.String())
}

func TestRunListAll(t *testing.T) {
	h := &harness{}
	h.run(t, testConfig("/work"), "a\n")

	assert.Contains(t, h.out.String(), "1 /work/notes.txt:1 - TODO: refactor")
	assert.Contains(t, h.out.String(), "2 /work/notes.txt:2 - Patient SSN here")
	assert.Empty(t, h.launcher.launched)
}

func TestRunDeclineInstallAndRetry(t *testing.T) {
	h := &harness{}
	h.run(t, testConfig("/work"), "1\n2\nn\nn\n")

	assert.Contains(t, h.out.String(), "Vim IS NOT INSTALLED")
	assert.Empty(t, h.launcher.launched)
	assert.Empty(t, h.launcher.installed)
}

func TestRunScanErrorIsReported(t *testing.T) {
	h := &harness{}
	h.run(t, testConfig("/missing"), "")

	assert.True(t, strings.HasPrefix(h.errOut.String(), "❌ Error scanning: "), h.errOut.String())
	assert.NotContains(t, h.out.String(), "Summary")
}

func TestRunNonInteractive(t *testing.T) {
	cfg := testConfig("/work")
	cfg.Interactive = false

	h := &harness{}
	h.run(t, cfg, "1\n1\n", "code")

	assert.Contains(t, h.out.String(), "2 total items to review")
	assert.NotContains(t, h.out.String(), "Select item")
	assert.Empty(t, h.launcher.launched)
}

func TestRunNoFindings(t *testing.T) {
	cfg := testConfig("/work")
	cfg.Scan.MaxDepth = 0

	h := &harness{}
	h.run(t, cfg, "1\n")

	assert.Contains(t, h.out.String(), "No TODOs, FIXMEs, or healthcare risks found!")
	assert.NotContains(t, h.out.String(), "Select item")
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := testConfig("/work")
	cfg.Scan.OnFileError = "bogus"

	r := NewRunner(cfg, zap.NewNop().Sugar(), WithFilesystem(memfs.New()))
	err := r.Run(context.Background())
	assert.ErrorContains(t, err, "invalid configuration")
}
