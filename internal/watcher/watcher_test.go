package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dcshock/enumreg/internal/watcher"
)

func startWatcher(t *testing.T, files ...string) <-chan struct{} {
	t.Helper()
	w, err := watcher.New(watcher.Config{Files: files, Debounce: 50 * time.Millisecond})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return onChange
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snmp.conf")
	require.NoError(t, os.WriteFile(path, []byte("enum a 1:b\n"), 0o644))

	onChange := startWatcher(t, path)

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("enum a %d:b\n", i)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-onChange:
		t.Fatal("unexpected second notification")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snmp.conf")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("enum a 1:b\n"), 0o644))
	require.NoError(t, os.WriteFile(other, []byte("initial"), 0o644))

	onChange := startWatcher(t, path)

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o644))

	select {
	case <-onChange:
		t.Fatal("should not notify for unwatched file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MultipleFiles(t *testing.T) {
	a := filepath.Join(t.TempDir(), "a.conf")
	b := filepath.Join(t.TempDir(), "b.conf")
	require.NoError(t, os.WriteFile(a, nil, 0o644))
	require.NoError(t, os.WriteFile(b, nil, 0o644))

	onChange := startWatcher(t, a, b)

	require.NoError(t, os.WriteFile(b, []byte("enum x 1:y\n"), 0o644))

	select {
	case <-onChange:
	case <-time.After(time.Second):
		t.Fatal("expected notification for second file")
	}
}

func TestNew_NoFiles(t *testing.T) {
	_, err := watcher.New(watcher.Config{})
	require.Error(t, err)
}
