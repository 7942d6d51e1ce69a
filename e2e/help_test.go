//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// flag prints usage and exits 0 for -help
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "-axis")
	require.Contains(t, output, "-backend")
	require.Contains(t, output, "-delimiter")
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	_, err = tf.CreatePage("a.md", "only page")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(workspace))
	require.True(t, tf.Ready())

	require.NoError(t, tf.ToggleHelp())
	require.True(t, tf.SeePlain("Swiper Help"), "Help popup should open")
	require.True(t, tf.SeePlain("next page"))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))
}
