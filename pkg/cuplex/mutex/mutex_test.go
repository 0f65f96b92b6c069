package mutex

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/cuplex/pkg/cuplex"
)

func TestNew_InvalidCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -1} {
		m, err := New(count)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, cuplex.ErrInvalidCount)
	}
}

func TestMutex_ThreeOfSix(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	m, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, 3, m.Available())

	var (
		mu       sync.Mutex
		releases []Release
	)
	held := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(releases)
	}

	for i := 0; i < 6; i++ {
		go func() {
			release, err := m.Acquire(ctx)
			if err != nil {
				return
			}
			mu.Lock()
			releases = append(releases, release)
			mu.Unlock()
		}()
	}

	require.Eventually(t, func() bool { return held() == 3 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 3, held())
	assert.Equal(t, 0, m.Available())

	mu.Lock()
	first := append([]Release(nil), releases...)
	mu.Unlock()
	for _, r := range first {
		r()
	}

	require.Eventually(t, func() bool { return held() == 6 }, time.Second, time.Millisecond)
}

func TestMutex_NeverExceedsCount(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for _, count := range []int{1, 2, 5} {
		m, err := New(count)
		require.NoError(t, err)

		var inside, peak atomic.Int32
		g, gctx := errgroup.WithContext(ctx)
		for i := 0; i < 20; i++ {
			g.Go(func() error {
				release, err := m.Acquire(gctx)
				if err != nil {
					return err
				}
				defer release()

				now := inside.Add(1)
				for {
					p := peak.Load()
					if now <= p || peak.CompareAndSwap(p, now) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				inside.Add(-1)
				return nil
			})
		}
		require.NoError(t, g.Wait())
		assert.LessOrEqual(t, peak.Load(), int32(count))
		assert.Equal(t, count, m.Available())
	}
}

func TestLock_ReleaseOnce(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	l := Lock()
	release, err := l.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Available())

	release()
	release()
	assert.Equal(t, 1, l.Available())
}

func TestAcquire_ContextEnds(t *testing.T) {
	t.Parallel()

	l := Lock()
	release, err := l.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	assert.Equal(t, 1, l.Available())
}
