package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns what it printed on stdout.
// Flags are reset first since cobra keeps their values between executions.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeDoc(t *testing.T, dir, name string, a *domain.Automaton) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, document.WriteFile(path, a))
	return path
}

func binaryA(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New([]string{"q0", "q1", "q2"}, []string{"0", "1"}, "q0", []string{"q2"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("q0", "0", "q1"))
	require.NoError(t, a.AddTransition("q1", "1", "q2"))
	require.NoError(t, a.AddTransition("q2", "0", "q2"))
	return a
}

func binaryB(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New([]string{"s0", "s1", "s2", "s3"}, []string{"0", "1"}, "s0", []string{"s2"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("s0", "0", "s1", "s2"))
	require.NoError(t, a.AddTransition("s1", "1", "s3"))
	return a
}

func TestComposeCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", binaryA(t))
	b := writeDoc(t, dir, "b.yaml", binaryB(t))

	out, err := run(t, "compose", "concatenation", a, b)
	require.NoError(t, err)
	res, err := document.Unmarshal([]byte(out), document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 7, res.StateCount())
	assert.Equal(t, []string{"s2"}, res.AcceptStates())

	outPath := filepath.Join(dir, "star.json")
	_, err = run(t, "compose", "iteration", a, "-o", outPath)
	require.NoError(t, err)
	star, err := document.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, star.Accepts())
}

func TestComposeCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", binaryA(t))

	_, err := run(t, "compose", "concatenation", a, a, "--reject-overlap")
	assert.Error(t, err)

	_, err = run(t, "compose", "concatenation", a)
	assert.ErrorContains(t, err, "two operands")

	_, err = run(t, "compose", "iteration", a, a)
	assert.ErrorContains(t, err, "one operand")

	_, err = run(t, "compose", "intersection", a, a)
	assert.ErrorContains(t, err, "unknown operation")

	_, err = run(t, "compose", "iteration", filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, document.ErrIO)

	out, err := run(t, "compose", "concatenation", a, a)
	require.NoError(t, err, "overlap is renamed once the reject flag is reset")
	assert.NotEmpty(t, out)
}

func TestPruneAndUnreachableCommands(t *testing.T) {
	dir := t.TempDir()
	a := binaryA(t)
	a.AddState("q9")
	require.NoError(t, a.AddTransition("q9", "1", "q2"))
	path := writeDoc(t, dir, "island.json", a)

	out, err := run(t, "unreachable", path)
	require.NoError(t, err)
	assert.Equal(t, "q9\n", out)

	pruned := filepath.Join(dir, "pruned.json")
	_, err = run(t, "prune", path, "-o", pruned)
	require.NoError(t, err)

	out, err = run(t, "unreachable", pruned)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeDoc(t, dir, "a.json", binaryA(t))
	b := writeDoc(t, dir, "b.json", binaryB(t))

	out, err := run(t, "export", a)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph NFA {"))

	_, err = run(t, "export", a, b)
	assert.ErrorContains(t, err, "--out-dir")

	outDir := filepath.Join(dir, "diagrams")
	_, err = run(t, "export", a, b, "--format", "mermaid", "--out-dir", outDir)
	require.NoError(t, err)
	for _, name := range []string{"a.mmd", "b.mmd"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "graph LR"))
	}

	_, err = run(t, "export", a, "--format", "png")
	assert.ErrorContains(t, err, "unknown format")
}

func TestExportCommand_SameBaseName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "left"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "right"), 0755))
	a := writeDoc(t, filepath.Join(dir, "left"), "x.json", binaryA(t))
	b := writeDoc(t, filepath.Join(dir, "right"), "x.json", binaryB(t))

	outDir := filepath.Join(dir, "diagrams")
	_, err := run(t, "export", a, b, "--out-dir", outDir)
	assert.ErrorContains(t, err, "would both be exported to")
	assert.NoFileExists(t, filepath.Join(outDir, "x.dot"))
}

func TestGenerateCommand(t *testing.T) {
	first, err := run(t, "generate", "--states", "6", "--seed", "7")
	require.NoError(t, err)
	second, err := run(t, "generate", "--states", "6", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	a, err := document.Unmarshal([]byte(first), document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 6, a.StateCount())
	assert.Equal(t, "q0", a.Start())

	_, err = run(t, "generate", "--density", "3")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestAcceptsCommand(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "a.json", binaryA(t))

	out, err := run(t, "accepts", path, "0", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "accepted")

	out, err = run(t, "accepts", path)
	require.NoError(t, err)
	assert.Contains(t, out, "rejected")

	_, err = run(t, "accepts", path, "1", "--strict")
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "letters.json", binaryA(t))

	out, err := run(t, "describe", path, "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "# letters")
	assert.Contains(t, out, "| States | 3 |")
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "nfa.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("store:\n  backend: file\n  dir: "+filepath.Join(dir, "store")+"\n"), 0644))
	a := writeDoc(t, dir, "a.json", binaryA(t))
	b := writeDoc(t, dir, "b.json", binaryB(t))

	_, err := run(t, "--config", cfgPath, "store", "put", "left", a)
	require.NoError(t, err)
	_, err = run(t, "--config", cfgPath, "store", "put", "right", b)
	require.NoError(t, err)

	out, err := run(t, "--config", cfgPath, "store", "list")
	require.NoError(t, err)
	assert.Equal(t, "left\nright\n", out)

	out, err = run(t, "--config", cfgPath, "compose", "alternation", "store:left", "store:right")
	require.NoError(t, err)
	res, err := document.Unmarshal([]byte(out), document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 8, res.StateCount())

	out, err = run(t, "--config", cfgPath, "store", "get", "left")
	require.NoError(t, err)
	got, err := document.Unmarshal([]byte(out), document.FormatJSON)
	require.NoError(t, err)
	assert.True(t, binaryA(t).Equal(got))

	_, err = run(t, "--config", cfgPath, "store", "delete", "left")
	require.NoError(t, err)
	_, err = run(t, "--config", cfgPath, "store", "get", "left")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "nfa version "))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "version")
	assert.ErrorContains(t, err, "unknown log level")
}
