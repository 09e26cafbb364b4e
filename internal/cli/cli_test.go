package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/osmodel/internal/config"
	"github.com/vvka-141/osmodel/internal/ui"
	"github.com/vvka-141/osmodel/pkg/osmodel"
)

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

// executeIn runs the root command with dir as the config directory and
// returns everything written to stdout and stderr.
func executeIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv(config.EnvKind, "")
	t.Setenv(config.EnvConsumePolicy, "")
	t.Setenv(config.EnvNonInteractive, "1")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", dir))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

func TestTreeCmd(t *testing.T) {
	tests := []struct {
		kind    string
		dirLine string
		file    string
	}{
		{"linux", "+ Directory1.lnxd", "File1.lnx content => -"},
		{"bsd", "+ Directory1.bsdir", "File1.bsd content => -"},
		{"nt", "+ Directory1.ntdir", "File1.nt content => -"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out, err := execute(t, "tree", "--kind", tt.kind)
			require.NoError(t, err)
			assert.Contains(t, out, "Files are created...")
			assert.Contains(t, out, tt.dirLine)
			assert.Contains(t, out, tt.file)
		})
	}
}

func TestPathsCmd(t *testing.T) {
	out, err := execute(t, "paths", "--kind", "bsd")
	require.NoError(t, err)

	assert.Contains(t, out, "/Directory1.bsdir/Directory2.bsdir/File2.bsd")
	assert.Contains(t, out, "/File3.bsd")
	assert.Contains(t, out, "/Directory3.bsdir/File4.bsd")
}

func TestWriteCmd(t *testing.T) {
	out, err := execute(t, "write", "hello", "--kind", "nt")
	require.NoError(t, err)

	assert.Contains(t, out, "File Name: my-file.nt")
	assert.Contains(t, out, "Current Content: -")
	assert.Contains(t, out, "New Content: hello")
}

func TestWriteCmd_ArgsValidation(t *testing.T) {
	err := writeCmd.Args(writeCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, osmodel.ExitUsageError, osmodel.ExitCodeForError(err))
}

func TestDevicesCmd_DefaultPolicy(t *testing.T) {
	out, err := execute(t, "devices", "--data", "packet")
	require.NoError(t, err)

	assert.Contains(t, out, "Application A's data is updated: packet")
	assert.Contains(t, out, "Application B's data is updated: packet")
	assert.Equal(t, 1, strings.Count(out, "(Consumed "))
	assert.Contains(t, out, "CPU has been reset.")
	assert.Contains(t, out, "I/O Device has been reset.")
}

func TestDevicesCmd_PerObserverPolicy(t *testing.T) {
	out, err := execute(t, "devices", "--consume-policy", "per-observer")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "(Consumed "))
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo", "--kind", "linux")
	require.NoError(t, err)

	create := strings.Index(out, "Files are created...")
	write := strings.Index(out, "New Content: -new content-")
	reset := strings.Index(out, "CPU has been reset.")
	require.True(t, create >= 0 && write > create && reset > write, out)
}

func TestRunCmd_Ops(t *testing.T) {
	out, err := execute(t, "run", "--kind", "bsd", "--ops", "create,shutdown,display")
	require.NoError(t, err)

	assert.Contains(t, out, "Files are created...")
	assert.Contains(t, out, "CPU has been reset.")
	assert.NotContains(t, out, "+ Directory1.bsdir", "display after shutdown must not run")
}

func TestRunCmd_BadOps(t *testing.T) {
	_, err := execute(t, "run", "--ops", "create,format")
	require.Error(t, err)
	assert.Equal(t, osmodel.ExitConfigError, osmodel.ExitCodeForError(err))
}

func TestRunCmd_NonInteractiveWithoutOps(t *testing.T) {
	_, err := execute(t, "run")
	require.ErrorIs(t, err, osmodel.ErrNotInteractive)
	assert.Equal(t, osmodel.ExitUsageError, osmodel.ExitCodeForError(err))
}

func TestUnknownKind(t *testing.T) {
	_, err := execute(t, "tree", "--kind", "solaris")
	require.ErrorIs(t, err, osmodel.ErrUnknownKind)
	assert.Equal(t, osmodel.ExitConfigError, osmodel.ExitCodeForError(err))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.Save(dir, &config.ProjectConfig{
		Kind:         "nt",
		Applications: []string{"Mail", "Browser", "Chat"},
		NetworkData:  "from-file",
	}))

	out, err := executeIn(t, dir, "devices", "--consume-policy", "per-observer")
	require.NoError(t, err)
	assert.Contains(t, out, "Chat's data is updated: from-file")
	assert.Equal(t, 3, strings.Count(out, "(Consumed "))

	out, err = executeIn(t, dir, "tree", "--kind", "linux")
	require.NoError(t, err)
	assert.Contains(t, out, "Directory1.lnxd", "flag beats file")
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFileName), []byte("OSMODEL_KIND=bsd\n"), 0644))

	// godotenv does not override variables that are already set
	resetFlags(rootCmd)
	t.Setenv(config.EnvNonInteractive, "1")
	require.NoError(t, os.Unsetenv(config.EnvKind))
	t.Cleanup(func() { _ = os.Unsetenv(config.EnvKind) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"tree", "--config", dir})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Directory1.bsdir")
}

func TestInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("kind: [unterminated"), 0644))

	_, err := executeIn(t, dir, "tree")
	require.ErrorIs(t, err, osmodel.ErrInvalidConfig)
}

func TestVerboseFlag(t *testing.T) {
	out, err := execute(t, "devices", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "[VERBOSE] resetting CPU")
}

func TestSelectApprover(t *testing.T) {
	assert.Nil(t, selectApprover(false, false, false))
	assert.IsType(t, &ui.ForcedApprover{}, selectApprover(true, false, false))
	assert.IsType(t, &ui.ForcedApprover{}, selectApprover(true, true, false))
	assert.IsType(t, &ui.InteractiveApprover{}, selectApprover(false, true, false))
}
