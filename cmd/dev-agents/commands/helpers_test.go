package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// testEnv is an isolated home and project directory for one test.
type testEnv struct {
	home    string
	project string
	global  string
}

// newTestEnv points HOME, the XDG config home and the working directory at
// temp dirs and resets package state between command runs.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		home:    t.TempDir(),
		project: t.TempDir(),
	}
	env.global = filepath.Join(env.home, ".claude")

	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.home, ".config"))
	t.Setenv("NO_COLOR", "1")
	xdg.Reload()

	origGetwd := getwd
	getwd = func() (string, error) { return env.project, nil }
	origPick := pickCommand
	origIsTerminal := stdinIsTerminal
	stdinIsTerminal = func(*cobra.Command) bool { return false }

	t.Cleanup(func() {
		getwd = origGetwd
		pickCommand = origPick
		stdinIsTerminal = origIsTerminal
		resetFlags()
		viper.Reset()
	})

	resetFlags()
	viper.Reset()
	return env
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
	// Count flags accumulate on Set; force zero.
	verbosity = 0
	cfg = nil
	configLoadErr = nil
}

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return stdout.String(), stderr.String(), err
}
