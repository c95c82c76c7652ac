package watch

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) flush(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.batches...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(30*time.Millisecond, rec.flush)

	d.Add("b.txt")
	d.Add("a.txt")
	d.Add("b.txt")

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, [][]string{{"a.txt", "b.txt"}}, rec.snapshot())

	// nothing else arrives after the flush
	time.Sleep(60 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1)
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.flush)

	d.Add("a.txt")
	d.Stop()
	d.Add("b.txt")

	time.Sleep(60 * time.Millisecond)
	require.Empty(t, rec.snapshot())
}

func TestDebouncer_FlushesDoNotOverlap(t *testing.T) {
	rec := &recorder{}
	var running, maxRunning atomic.Int32
	slow := func(paths []string) {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		rec.flush(paths)
		running.Add(-1)
	}
	d := NewDebouncer(time.Millisecond, slow)

	d.Add("a")
	time.Sleep(10 * time.Millisecond) // first flush is now inside the callback
	d.Add("b")

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	require.Equal(t, [][]string{{"a"}, {"b"}}, rec.snapshot())
	require.EqualValues(t, 1, maxRunning.Load())
}
