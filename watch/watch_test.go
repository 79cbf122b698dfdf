package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu       sync.Mutex
	contents []string
}

func (r *recorder) fn(_ context.Context, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contents = append(r.contents, content)
	return nil
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.contents...)
}

func (r *recorder) has(content string) bool {
	for _, c := range r.snapshot() {
		if c == content {
			return true
		}
	}
	return false
}

func runWatch(t *testing.T, path string, rec *recorder, opts ...Option) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, rec.fn, opts...)
	}()
	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 1 }, 2*time.Second, 10*time.Millisecond)
	return cancel, done
}

func TestFile_DeliversChanges(t *testing.T) {
	modes := map[string][]Option{
		"fsnotify": nil,
		"polling":  {WithPolling(), WithPollInterval(10 * time.Millisecond)},
	}

	for name, opts := range modes {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prompt.md")
			require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

			rec := &recorder{}
			cancel, done := runWatch(t, path, rec, opts...)

			assert.Equal(t, []string{"first"}, rec.snapshot())

			require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
			assert.Eventually(t, func() bool { return rec.has("second") }, 2*time.Second, 10*time.Millisecond)

			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(2 * time.Second):
				t.Fatal("watch did not stop after cancel")
			}
		})
	}
}

func TestFile_SkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o600))

	rec := &recorder{}
	cancel, done := runWatch(t, path, rec, WithPolling(), WithPollInterval(5*time.Millisecond))

	require.NoError(t, os.WriteFile(path, []byte("same"), 0o600))
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{"same"}, rec.snapshot())
}

func TestFile_MissingFile(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "absent"), func(context.Context, string) error {
		t.Fatal("callback must not run")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_CallbackErrorStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	stop := errors.New("stop")

	err := File(context.Background(), path, func(context.Context, string) error {
		return stop
	})

	assert.ErrorIs(t, err, stop)
}
