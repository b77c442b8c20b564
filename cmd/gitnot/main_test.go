package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestUnknownArgumentIsNonFatal(t *testing.T) {
	chtemp(t)
	cmd := newRootCommand()
	cmd.SetArgs([]string{"bogus"})
	assert.NoError(t, cmd.Execute())
}

func TestUnknownFlagDoesNotCommit(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("hello"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--init"})
	require.NoError(t, cmd.Execute())

	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("hello world"), 0o644))

	cmd = newRootCommand()
	cmd.SetArgs([]string{"--bogus"})
	assert.NoError(t, cmd.Execute(), "unknown flag gets a hint, not an error")

	version, err := os.ReadFile(dir + "/.gitnot/version.txt")
	require.NoError(t, err)
	assert.Equal(t, "0.1", string(version), "unknown flag must not commit")
}

func TestStatusBeforeInit(t *testing.T) {
	chtemp(t)
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--status"})
	assert.NoError(t, cmd.Execute(), "status on an uninitialized dir is advisory, not fatal")
}

func TestInitThenShow(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("hello"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--init"})
	require.NoError(t, cmd.Execute())

	cmd = newRootCommand()
	cmd.SetArgs([]string{"--show"})
	assert.NoError(t, cmd.Execute())
}

func TestBareInvocationCommits(t *testing.T) {
	dir := chtemp(t)
	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("hello"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--init"})
	require.NoError(t, cmd.Execute())

	require.NoError(t, os.WriteFile(dir+"/a.txt", []byte("hello world"), 0o644))

	cmd = newRootCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	version, err := os.ReadFile(dir + "/.gitnot/version.txt")
	require.NoError(t, err)
	assert.Equal(t, "0.2", string(version))
}
