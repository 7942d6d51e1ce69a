//go:build e2e && unix

package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	configPath := filepath.Join(workspace, "swiper.toml")

	cmd := exec.Command(binPath, "--config", configPath, "--axis", "horizontal", "--write-config")
	cmd.Dir = workspace
	cmd.Env = append(os.Environ(), "HOME="+workspace, "SWIPER_THRESHOLD_RATIO=0.4")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err, "Config file should be created")
	require.Contains(t, string(content), "threshold_ratio = 0.4", "environment override should be saved")
	require.Contains(t, string(content), "axis = 'horizontal'", "flag should be saved")
}

func TestInvalidFlagExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	cmd := exec.Command(binPath, "--axis", "diagonal", workspace)
	cmd.Dir = workspace
	cmd.Env = append(os.Environ(), "HOME="+workspace)
	err = cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected a non-zero exit, got %v", err)
	require.Equal(t, 2, exitErr.ExitCode())
}
