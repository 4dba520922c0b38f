package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyOpensOnce(t *testing.T) {
	backend := setupGormStore(t)
	seedPizza(t, backend)

	var opens int32
	lazy := NewLazy(func() (Store, error) {
		atomic.AddInt32(&opens, 1)
		return backend, nil
	})
	assert.Equal(t, int32(0), atomic.LoadInt32(&opens))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lazy.Get(context.Background(), "abc123")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&opens))
}

func TestLazyOpenFailureIsSticky(t *testing.T) {
	boom := errors.New("no credentials")
	var opens int32
	lazy := NewLazy(func() (Store, error) {
		atomic.AddInt32(&opens, 1)
		return nil, boom
	})

	_, err := lazy.Get(context.Background(), "abc123")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, lazy.Delete(context.Background(), "abc123"), boom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&opens))

	require.NoError(t, lazy.Close())
}

func TestLazyCloseBeforeOpen(t *testing.T) {
	lazy := NewLazy(func() (Store, error) {
		t.Fatal("opener must not run on Close")
		return nil, nil
	})
	assert.NoError(t, lazy.Close())
}
