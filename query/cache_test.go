package query

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-connect-client/pkg/apierror"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	t.Run("second call within ttl hits the cache", func(t *testing.T) {
		c := NewCache(time.Minute)
		calls := 0

		fn := func(context.Context) ([]string, error) {
			calls++
			return []string{"a"}, nil
		}

		first, err := Fetch(context.Background(), c, "items", fn)
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, first)

		second, err := Fetch(context.Background(), c, "items", fn)
		require.NoError(t, err)
		require.Equal(t, []string{"a"}, second)
		require.Equal(t, 1, calls)
	})

	t.Run("error is returned and not cached", func(t *testing.T) {
		c := NewCache(time.Minute)
		calls := 0

		fn := func(context.Context) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("boom")
			}
			return 42, nil
		}

		_, err := Fetch(context.Background(), c, "n", fn)
		require.Error(t, err)

		value, err := Fetch(context.Background(), c, "n", fn)
		require.NoError(t, err)
		require.Equal(t, 42, value)
	})

	t.Run("concurrent callers collapse onto one request", func(t *testing.T) {
		c := NewCache(time.Minute)
		var calls atomic.Int32
		release := make(chan struct{})

		fn := func(context.Context) (string, error) {
			calls.Add(1)
			<-release
			return "value", nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				value, err := Fetch(context.Background(), c, "shared", fn)
				require.NoError(t, err)
				require.Equal(t, "value", value)
			}()
		}

		// Let the goroutines pile onto the in-flight call before releasing.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		require.Equal(t, int32(1), calls.Load())
	})
}

func TestMutate(t *testing.T) {
	t.Parallel()

	t.Run("success invalidates prefixes and notifies", func(t *testing.T) {
		c := NewCache(time.Minute)
		c.Set("items", 1)
		c.Set("items:detail", 2)
		c.Set("other", 3)
		n := &recordingNotifier{}

		_, err := Mutate(context.Background(), c, n, []string{"items"}, "Saved!", "Failed",
			func(context.Context) (struct{}, error) { return struct{}{}, nil })
		require.NoError(t, err)

		_, ok := c.Get("items")
		require.False(t, ok)
		_, ok = c.Get("items:detail")
		require.False(t, ok)
		_, ok = c.Get("other")
		require.True(t, ok)
		require.Equal(t, []string{"Saved!"}, n.successes)
	})

	t.Run("failure keeps cache and reports the backend message", func(t *testing.T) {
		c := NewCache(time.Minute)
		c.Set("items", 1)
		n := &recordingNotifier{}

		apiErr := apierror.New("CONFLICT", "Title already exists", "", 409)
		_, err := Mutate(context.Background(), c, n, []string{"items"}, "Saved!", "Failed",
			func(context.Context) (struct{}, error) {
				return struct{}{}, fmt.Errorf("create: %w", apiErr)
			})
		require.Error(t, err)

		_, ok := c.Get("items")
		require.True(t, ok)
		require.Empty(t, n.successes)
		require.Equal(t, []string{"Title already exists"}, n.errors)
	})

	t.Run("empty success message stays silent", func(t *testing.T) {
		c := NewCache(time.Minute)
		n := &recordingNotifier{}

		_, err := Mutate(context.Background(), c, n, nil, "", "Failed",
			func(context.Context) (struct{}, error) { return struct{}{}, nil })
		require.NoError(t, err)
		require.Empty(t, n.successes)
	})
}

func TestMessage(t *testing.T) {
	t.Parallel()

	t.Run("prefers the API error message", func(t *testing.T) {
		err := fmt.Errorf("wrap: %w", apierror.New("BAD_REQUEST", "Email is taken", "", 400))
		require.Equal(t, "Email is taken", Message(err, "fallback"))
	})

	t.Run("falls back for plain errors", func(t *testing.T) {
		require.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
	})
}

func TestInvalidateEmptyPrefixDropsEverything(t *testing.T) {
	t.Parallel()

	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Invalidate("")

	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.False(t, ok)
}
