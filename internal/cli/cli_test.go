package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizbank/internal/catalog"
	"quizbank/internal/config"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (stand-in for testing.T.Chdir,
// which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(previous))
	})
}

func TestRootHelp(t *testing.T) {
	code, out, errOut := run(t, "--help")
	require.Equal(t, ExitOK, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Usage:")
	for _, name := range []string{"seed", "validate", "list", "batches", "init"} {
		assert.Contains(t, out, name)
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, errOut := run(t)
	require.Equal(t, ExitUsage, code)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "Usage:")
}

func TestUnknownCommand(t *testing.T) {
	code, out, errOut := run(t, "nope")
	require.Equal(t, ExitUsage, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown command "nope"`)
	assert.Contains(t, errOut, "Usage:")
}

func TestUnexpectedArguments(t *testing.T) {
	code, _, errOut := run(t, "seed", "extra")
	require.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "unexpected arguments: extra")
}

func TestUnknownFlag(t *testing.T) {
	code, _, _ := run(t, "seed", "--bogus")
	assert.Equal(t, ExitUsage, code)
}

func TestInvalidLogLevel(t *testing.T) {
	code, _, errOut := run(t, "--log-level", "loud", "batches")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "invalid log level")
}

func TestSeedTwiceAccumulates(t *testing.T) {
	chdir(t, t.TempDir())

	code, out, errOut := run(t, "seed")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "Added 10 questions")
	assert.Contains(t, out, "(total 10)")

	code, out, errOut = run(t, "seed", "--batch", "examples")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "(total 20)")

	records, err := catalog.Load(config.DefaultCatalogFile)
	require.NoError(t, err)
	require.Len(t, records, 20)
	assert.Equal(t, "Invertir cadena", records[0].Title)
	assert.Equal(t, "Suma dos números", records[10].Title)
}

func TestSeedUsesConfigFile(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	stubGitRoot(t, "")
	require.Equal(t, ExitOK, Run([]string{"init"}, io.Discard, io.Discard))

	cfgPath := config.ConfigPath(root)
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\ncatalog: bank/questions.yaml\nbatch: examples\n"), 0o644))

	code, out, errOut := run(t, "seed")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, filepath.Join("bank", "questions.yaml"))

	records, err := catalog.Load(filepath.Join(root, "bank", "questions.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Suma dos números", records[0].Title)
}

func TestSeedUnknownBatch(t *testing.T) {
	chdir(t, t.TempDir())
	code, _, errOut := run(t, "seed", "--batch", "missing")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "Seed failed:")
	assert.Contains(t, errOut, "unknown batch")
}

func TestSeedMalformedCatalogFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yaml")
	original := []byte("title: not a list\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	code, _, errOut := run(t, "--catalog", path, "seed")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "Seed failed:")
	assert.Contains(t, errOut, "expected a sequence")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}

func TestSeedLogsAtInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	code, _, errOut := run(t, "--catalog", path, "--log-level", "info", "--log-format", "json", "seed")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, errOut, `"msg":"catalog seeded"`)
	assert.Contains(t, errOut, `"batch":"functional"`)
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.Equal(t, ExitOK, Run([]string{"--catalog", path, "seed"}, io.Discard, io.Discard))

	code, out, errOut := run(t, "--catalog", path, "validate")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "Catalog OK")
	assert.Contains(t, out, "(10 questions)")

	require.NoError(t, os.WriteFile(path, []byte("- title: ''\n  prompt: p\n"), 0o644))
	code, _, errOut = run(t, "--catalog", path, "validate")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "Validate failed:")
	assert.Contains(t, errOut, "records[0].title")
}

func TestListPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.Equal(t, ExitOK, Run([]string{"--catalog", path, "seed"}, io.Discard, io.Discard))

	code, out, errOut := run(t, "--catalog", path, "list")
	require.Equal(t, ExitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "1. Invertir cadena [strings]\n"), out)
	assert.Contains(t, out, "   - Slicing [::-1]\n")
	assert.Contains(t, out, "10. Promedio por grupo")
}

func TestListTableOnTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = orig })

	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.Equal(t, ExitOK, Run([]string{"--catalog", path, "seed", "--batch", "examples"}, io.Discard, io.Discard))

	code, out, errOut := run(t, "--catalog", path, "list")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Palíndromo")
	assert.Contains(t, out, "╭")

	code, out, _ = run(t, "--catalog", path, "list", "--plain")
	require.Equal(t, ExitOK, code)
	assert.NotContains(t, out, "╭")
}

func TestListEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	code, out, _ := run(t, "--catalog", path, "list")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "is empty")
}

func TestBatchesCommand(t *testing.T) {
	code, out, _ := run(t, "batches")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "examples")
	assert.Contains(t, out, "functional   10 questions (default)")
}

func stubGitRoot(t *testing.T, root string) {
	t.Helper()
	orig := discoverGitRoot
	discoverGitRoot = func(context.Context, string) string { return root }
	t.Cleanup(func() { discoverGitRoot = orig })
}

func TestInitRefusesOverwrite(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)
	stubGitRoot(t, "")

	code, out, _ := run(t, "init")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, config.ConfigPath(root))

	code, _, errOut := run(t, "init")
	require.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "already exists")
}

func TestInitPrefersGitRoot(t *testing.T) {
	repoRoot := t.TempDir()
	nested := filepath.Join(repoRoot, "pkg", "quiz")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)
	stubGitRoot(t, repoRoot)

	code, out, errOut := run(t, "init")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, config.ConfigPath(repoRoot))

	_, err := os.Stat(config.ConfigPath(repoRoot))
	require.NoError(t, err)
}
