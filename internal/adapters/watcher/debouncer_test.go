package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deco/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/src/app.module.ts")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/src/app.module.ts"}, receivedPaths)
	})
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/src/c.ts")
		d.Add("/project/src/a.ts")
		d.Add("/project/src/c.ts")
		d.Add("/project/src/b.ts")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/src/a.ts", "/project/src/b.ts", "/project/src/c.ts"}, receivedPaths)
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add("/project/src/a.ts")
		time.Sleep(50 * time.Millisecond)

		// Restarts the window.
		d.Add("/project/src/b.ts")
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush_Immediate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/src/b.ts")
		d.Add("/project/src/a.ts")

		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/src/a.ts", "/project/src/b.ts"}, receivedPaths)

		// The stopped timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/project/src/a.ts")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)

		d.Flush()

		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add("/project/src/a.ts")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/src/b.ts")
		d.Flush()
	})
}
