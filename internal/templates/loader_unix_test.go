//go:build unix

package templates

import (
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsFIFO(t *testing.T) {
	loader, dir := createTestLoader(t, nil)
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, "pipe.md"), 0644))

	errCh := make(chan error, 1)
	go func() {
		_, err := loader.Load("pipe.md")
		errCh <- err
	}()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrResourceNotFound)
		assert.Contains(t, err.Error(), "not a regular file")
	case <-time.After(5 * time.Second):
		t.Fatal("Load blocked on a FIFO")
	}
}
