package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/concepts/swap-resolution/swap"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandRunsAllSections(t *testing.T) {
	stdout, stderr, err := execute(t, "--no-color")
	require.NoError(t, err)

	require.Contains(t, stdout, "━━━ Generic tier — ints copied through a temporary ━━━")
	require.Contains(t, stdout, "after swap.Swap:   i1=2 i2=1  (generic)")
	require.Contains(t, stdout, "strings after:  StrTwo StrOne  (exact)")
	require.Contains(t, stdout, "t2 now owns t1's old buffer: true")
	require.Contains(t, stdout, "after swap.Swap:    {11 22 33} {1 2 3}  (specialized)")
	require.Contains(t, stdout, "after:  {Moin Tschüss Aus} {Hi Bye End}  (specialized)")
	require.Contains(t, stdout, "after:  {Eins zwei drei} {One two three}  (generic)")
	require.Contains(t, stdout, "✗ length violation: 4 values for capacity 3")
	require.Contains(t, stdout, "before registration: specialized")
	require.Contains(t, stdout, "after registration:  exact")
	require.NotContains(t, stdout, "unknown error")
	require.NotContains(t, stdout, "\033[")

	require.Contains(t, stderr, "[resolver] swap.Triple[int] resolved to specialized swap")
	require.NotContains(t, stderr, "[swap] ")
}

func TestVerboseFlag(t *testing.T) {
	_, stderr, err := execute(t, "--no-color", "--verbose")
	require.NoError(t, err)
	require.Contains(t, stderr, "[swap] exact swap for string")
}

func TestScenarioFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
cases:
  - name: pair of words
    kind: string
    left: ["left"]
    right: ["right"]
`), 0o644))

	stdout, _, err := execute(t, "--no-color", "--scenarios", good)
	require.NoError(t, err)
	require.Contains(t, stdout, "pair of words")
	require.NotContains(t, stdout, "oversized triple")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
cases:
  - name: fits after all
    kind: triple-int
    left: ["1", "2"]
    right: ["3"]
    expect: length-violation
`), 0o644))

	stdout, stderr, err := execute(t, "--no-color", "--scenarios", bad)
	require.Error(t, err)
	require.Contains(t, stdout, "✗ unknown error: 1 of 1 scenarios failed")
	require.Contains(t, stderr, "1 section(s) failed")

	_, _, err = execute(t, "--scenarios", filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

// ── runSection error reporting ───────────────────────────────────────────────

func TestRunSection(t *testing.T) {
	tests := []struct {
		name       string
		fn         func() error
		wantFailed bool
		wantOut    string
	}{
		{
			name: "ok",
			fn:   func() error { return nil },
		},
		{
			name:    "known length violation",
			fn:      func() error { _, err := swap.NewTriple(1, 2, 3, 4, 5); return err },
			wantOut: "✗ length violation: 5 values for capacity 3",
		},
		{
			name:       "unknown error",
			fn:         func() error { return errors.New("boom") },
			wantFailed: true,
			wantOut:    "✗ unknown error: boom",
		},
		{
			name: "panic",
			fn: func() error {
				tr := swap.MustTriple(1, 2, 3)
				_ = tr.At(7)
				return nil
			},
			wantFailed: true,
			wantOut:    "✗ unknown failure:",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			d := &demo{out: &out}

			failed := d.runSection(tc.name, tc.fn)
			require.Equal(t, tc.wantFailed, failed)
			require.Contains(t, out.String(), "━━━ "+tc.name+" ━━━")
			require.Contains(t, out.String(), tc.wantOut)
		})
	}
}

func TestColorEnabled(t *testing.T) {
	require.False(t, colorEnabled(&bytes.Buffer{}, false))
	require.False(t, colorEnabled(os.Stdout, true))

	t.Setenv("NO_COLOR", "1")
	require.False(t, colorEnabled(os.Stdout, false))
}

func TestColoredSection(t *testing.T) {
	var out bytes.Buffer
	d := &demo{out: &out, color: true}
	d.section("title")
	require.Equal(t, "\n"+ansiBoldCyan+"━━━ title ━━━"+ansiReset+"\n", out.String())
}
