package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/requiregen/internal/adapters/watcher"
)

func TestDebouncer_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/project/composer.lock")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/project/composer.lock"}, batches[0])
	})
}

func TestDebouncer_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/project/composer.lock")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/composer.json")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/composer.lock")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/project/composer.json", "/project/composer.lock"}, batches[0])
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var batches [][]string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			batches = append(batches, paths)
		})

		d.Add("/a")
		time.Sleep(150 * time.Millisecond)
		d.Add("/b")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"/a"}, {"/b"}}, batches)
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		called := false
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			called = true
		})

		d.Add("/a")
		d.Stop()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.False(t, called)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/a")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}
