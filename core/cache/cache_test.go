package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	c, err := New(Config{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)

	c, err = New(Config{Driver: DriverNone})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	_, err = New(Config{Driver: "memcached"})
	assert.ErrorContains(t, err, "unsupported cache driver")

	_, err = New(Config{Driver: DriverRedis, Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))

	v, ok, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	now = now.Add(2 * time.Minute)
	_, ok, _ = m.Get(ctx, "a")
	assert.False(t, ok, "expired")
	_, ok, _ = m.Get(ctx, "b")
	assert.True(t, ok, "zero ttl never expires")

	require.NoError(t, m.Delete(ctx, "b"))
	_, ok, _ = m.Get(ctx, "b")
	assert.False(t, ok)
}

type payload struct {
	Name string `json:"name"`
}

func TestLoader_ReadThrough(t *testing.T) {
	ctx := context.Background()
	l := NewLoader(NewMemory(), time.Minute, zap.NewNop())
	var loads atomic.Int32

	load := func(context.Context) (any, error) {
		loads.Add(1)
		return payload{Name: "sam"}, nil
	}

	var got payload
	require.NoError(t, l.GetJSON(ctx, "profile:1", &got, load))
	assert.Equal(t, "sam", got.Name)

	got = payload{}
	require.NoError(t, l.GetJSON(ctx, "profile:1", &got, load))
	assert.Equal(t, "sam", got.Name)
	assert.EqualValues(t, 1, loads.Load())

	l.Invalidate(ctx, "profile:1")
	require.NoError(t, l.GetJSON(ctx, "profile:1", &got, load))
	assert.EqualValues(t, 2, loads.Load())
}

func TestLoader_LoadError(t *testing.T) {
	l := NewLoader(Noop{}, time.Minute, nil)
	var got payload
	err := l.GetJSON(context.Background(), "k", &got, func(context.Context) (any, error) {
		return nil, errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
}

func TestLoader_CollapsesConcurrentMisses(t *testing.T) {
	l := NewLoader(Noop{}, time.Minute, nil)
	release := make(chan struct{})
	var loads atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got payload
			_ = l.GetJSON(context.Background(), "hot", &got, func(context.Context) (any, error) {
				loads.Add(1)
				<-release
				return payload{Name: "x"}, nil
			})
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, loads.Load(), int32(5))
	assert.GreaterOrEqual(t, loads.Load(), int32(1))
}

func TestLoader_InvalidateDuringLoadIsNotCached(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	l := NewLoader(mem, time.Minute, zap.NewNop())
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan payload)
	go func() {
		var got payload
		_ = l.GetJSON(ctx, "profile:1", &got, func(context.Context) (any, error) {
			close(started)
			<-release
			return payload{Name: "before update"}, nil
		})
		done <- got
	}()

	<-started
	l.Invalidate(ctx, "profile:1")
	close(release)
	assert.Equal(t, "before update", (<-done).Name)

	_, ok, err := mem.Get(ctx, "profile:1")
	require.NoError(t, err)
	assert.False(t, ok, "a load overlapping an invalidation must not be written back")

	var got payload
	require.NoError(t, l.GetJSON(ctx, "profile:1", &got, func(context.Context) (any, error) {
		return payload{Name: "after update"}, nil
	}))
	assert.Equal(t, "after update", got.Name)
}
